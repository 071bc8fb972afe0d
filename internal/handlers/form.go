package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// payload flattens the request body into a map, accepting either a JSON
// document or form fields (urlencoded and multipart both work). The write
// endpoints tolerate both, matching what the pages and the import scripts
// send.
func payload(c *gin.Context) map[string]any {
	data := map[string]any{}

	if c.ContentType() == "application/json" {
		_ = c.ShouldBindJSON(&data)
		return data
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for k, vs := range form.Value {
			if len(vs) > 0 {
				data[k] = vs[0]
			}
		}
		return data
	}

	_ = c.Request.ParseForm()
	for k, vs := range c.Request.PostForm {
		if len(vs) > 0 {
			data[k] = vs[0]
		}
	}
	return data
}

func strField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// numField coerces a field to float64. Missing or unparseable values fall
// back to zero rather than failing the request.
func numField(data map[string]any, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
