package main

import (
	"net/http"

	"github.com/ironcoach/ironcoach/internal/i18n"
)

// sessionKeyLanguage is the session key holding the preferred language.
const sessionKeyLanguage = "language"

// setLanguagePOST stores the user's language preference in the session.
func (app *application) setLanguagePOST(w http.ResponseWriter, r *http.Request) {
	lang := r.FormValue("language")

	if !i18n.IsSupported(i18n.Language(lang)) {
		app.clientError(w, r, http.StatusBadRequest, "unsupported language")
		return
	}

	app.sessionManager.Put(r.Context(), sessionKeyLanguage, lang)
	app.writeJSON(w, r, http.StatusOK, map[string]string{"language": lang})
}
