package logctx

import (
	"context"
	"hilog/internal/global"
)

// Append new tag to tag list.
// Copy-on-write so parent contexts keep their list.
func AppendCtxTag(ctx context.Context, newTag string) (newCtx context.Context) {
	tags := append(GetTagList(ctx), newTag)

	newCtx = context.WithValue(ctx, global.LogTagsKey, tags)
	return
}

// Removes last index of tag list (copy-on-write)
func RemoveLastCtxTag(ctx context.Context) (newCtx context.Context) {
	tags := GetTagList(ctx)
	if len(tags) > 0 {
		tags = tags[:len(tags)-1]
	}

	newCtx = context.WithValue(ctx, global.LogTagsKey, tags)
	return
}

// Extracts a copy of the tag list from context. Never nil.
func GetTagList(ctx context.Context) (tags []string) {
	stored, _ := ctx.Value(global.LogTagsKey).([]string)

	tags = make([]string, len(stored))
	copy(tags, stored)
	return
}
