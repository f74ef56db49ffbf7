package handlers

import (
	"net/http"
)

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Exercise Tracker</title>
</head>
<body>
  <h1>Exercise Tracker</h1>
  <form action="/api/users" method="post">
    <h2>Create a new user</h2>
    <p><code>POST /api/users</code></p>
    <input name="username" type="text" placeholder="username">
    <input type="submit" value="Submit">
  </form>
  <form id="exercise-form" method="post">
    <h2>Add an exercise</h2>
    <p><code>POST /api/users/:id/exercises</code></p>
    <input name="id" type="text" placeholder="user id">
    <input name="description" type="text" placeholder="description">
    <input name="duration" type="text" placeholder="duration (mins.)">
    <input name="date" type="text" placeholder="date (yyyy-mm-dd)">
    <input type="submit" value="Submit">
  </form>
  <p>
    Read a log: <code>GET /api/users/:id/logs?[from][&amp;to][&amp;limit]</code>
  </p>
</body>
</html>
`

// NewHomeHandler returns an HTTP handler serving the static landing page.
// @Summary Landing page
// @Description Static HTML page describing the API.
// @Tags home
// @Produce html
// @Success 200 {string} string "Landing page"
// @Router / [get]
func NewHomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(homePage))
	}
}
