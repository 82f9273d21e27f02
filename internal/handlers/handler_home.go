package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var landingPage = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Currency Converter</title>
    <style>
      body { margin: 0; min-height: 100vh; display: flex; align-items: center; justify-content: center;
             font-family: Arial, sans-serif; background: linear-gradient(135deg, #3b82f6, #06b6d4); color: #fff; }
      .card { text-align: center; padding: 40px; background: rgba(255, 255, 255, 0.1); border-radius: 16px; }
      a { display: inline-block; margin-top: 16px; padding: 12px 24px; background: #fff; color: #3b82f6;
          border-radius: 8px; text-decoration: none; font-weight: bold; }
    </style>
  </head>
  <body>
    <div class="card">
      <h1>Welcome to Currency Converter</h1>
      <p>Convert any currency dynamically using our API.</p>
      {{if .DocsEnabled}}<a href="/api/docs/index.html">API Documentation &rarr;</a>{{end}}
    </div>
  </body>
</html>`))

// newHomeHandler renders the landing page once; it never changes at runtime.
func newHomeHandler(docsEnabled bool) gin.HandlerFunc {
	var buf bytes.Buffer
	if err := landingPage.Execute(&buf, struct{ DocsEnabled bool }{docsEnabled}); err != nil {
		panic(err)
	}
	page := buf.Bytes()

	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	}
}
