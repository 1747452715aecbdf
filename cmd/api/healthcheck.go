// cmd/api/healthcheck.go
package main

import "net/http"

// welcomeHandler handles GET /. It names the service and lists its endpoints.
func (app *applicationDependencies) welcomeHandler(w http.ResponseWriter, r *http.Request) {
	data := envelope{
		"message": "Welcome to the Bookstore API",
		"version": appVersion,
		"endpoints": map[string]string{
			"books":  "/v1/books",
			"health": "/v1/healthcheck",
		},
	}

	err := app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// healthcheckHandler handles GET /v1/healthcheck for load balancers and
// monitoring.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	data := envelope{
		"status": "available",
		"system_info": map[string]any{
			"environment": app.config.environment,
			"version":     appVersion,
			"books":       app.models.Books.Count(),
		},
	}

	err := app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
