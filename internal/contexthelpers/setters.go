package contexthelpers

import (
	"context"
	"net/http"

	"github.com/ironcoach/ironcoach/internal/i18n"
)

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, CurrentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetLanguage(r *http.Request, language i18n.Language) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, LanguageContextKey, language)
	return r.WithContext(ctx)
}
