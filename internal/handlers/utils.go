package handlers

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// getIntParam reads an integer query parameter. Absent or non-numeric values
// yield defaultValue; range checks are left to the caller.
func getIntParam(c echo.Context, name string, defaultValue int) int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// getClientIP is the address recorded with reloads in the load history
func getClientIP(c echo.Context) string {
	if ip := c.RealIP(); ip != "" {
		return ip
	}
	return c.Request().RemoteAddr
}
