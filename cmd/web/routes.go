package main

import (
	"net/http"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				app.commonContext(app.timeout(next)))))
		}
		api = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(base(next))))
		}
	)

	mux.Handle("GET /api/checkin", api(http.HandlerFunc(app.checkInGET)))
	mux.Handle("POST /api/recommendations/{kind}/snooze", api(http.HandlerFunc(app.snoozePOST)))
	mux.Handle("GET /api/freshness", api(http.HandlerFunc(app.freshnessGET)))

	mux.Handle("GET /api/routines", api(http.HandlerFunc(app.routinesGET)))
	mux.Handle("POST /api/routines", api(http.HandlerFunc(app.routinesPOST)))
	mux.Handle("POST /api/routines/generate", api(http.HandlerFunc(app.routineGeneratePOST)))
	mux.Handle("POST /api/gap-session", api(http.HandlerFunc(app.gapSessionPOST)))

	mux.Handle("GET /api/sessions", api(http.HandlerFunc(app.sessionsGET)))
	mux.Handle("POST /api/sessions", api(http.HandlerFunc(app.sessionsPOST)))

	mux.Handle("GET /api/exercises", api(http.HandlerFunc(app.exercisesGET)))
	mux.Handle("GET /api/exercises/{exerciseID}/info", api(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("GET /api/profile", api(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", api(http.HandlerFunc(app.profilePUT)))

	mux.Handle("GET /api/supplements/plan", api(http.HandlerFunc(app.supplementPlanGET)))
	mux.Handle("POST /api/supplements/intake", api(http.HandlerFunc(app.supplementIntakePOST)))
	mux.Handle("GET /api/supplements/report", api(http.HandlerFunc(app.supplementReportGET)))

	mux.Handle("POST /api/export", api(http.HandlerFunc(app.exportPOST)))
	mux.Handle("POST /api/language", api(http.HandlerFunc(app.setLanguagePOST)))
	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))

	return mux
}
