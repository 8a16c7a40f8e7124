package contexthelpers

import (
	"context"

	"github.com/ironcoach/ironcoach/internal/i18n"
)

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(CurrentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

func Language(ctx context.Context) i18n.Language {
	language, ok := ctx.Value(LanguageContextKey).(i18n.Language)
	if !ok {
		return i18n.DefaultLanguage
	}

	return language
}
