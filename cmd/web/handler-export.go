package main

import (
	"net/http"
)

// exportPOST snapshots the database into the export directory and returns
// the file path.
func (app *application) exportPOST(w http.ResponseWriter, r *http.Request) {
	path, err := app.coachService.Export(r.Context(), app.exportPath)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, map[string]string{"path": path})
}
