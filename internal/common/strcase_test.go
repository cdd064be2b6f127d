package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"User":       "user",
		"UserInfo":   "user_info",
		"ID":         "id",
		"HTTPServer": "http_server",
		"Point2D":    "point2_d",
		"CreatedAt":  "created_at",
		"x":          "x",
	}

	for in, want := range cases {
		assert.Equal(t, want, ToSnake(in), "ToSnake(%q)", in)
	}
}

func TestLowerCamel(t *testing.T) {
	cases := map[string]string{
		"ID":        "id",
		"Name":      "name",
		"CreatedAt": "createdAt",
		"URLPath":   "urlPath",
		"already":   "already",
		"X":         "x",
	}

	for in, want := range cases {
		assert.Equal(t, want, LowerCamel(in), "LowerCamel(%q)", in)
	}
}
