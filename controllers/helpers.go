package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func idParamFromUint(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// bindUpdateMap binds the request body as a loose field map for partial
// updates. Identity and timestamp fields are never client-writable.
func bindUpdateMap(c *gin.Context) (map[string]interface{}, bool) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		return nil, false
	}
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "createdAt")
	return fields, true
}

// remapKeys rewrites client-facing field names to column names, leaving
// everything else untouched. The client name wins when both appear.
func remapKeys(fields map[string]interface{}, aliases map[string]string) map[string]interface{} {
	for from, to := range aliases {
		if val, ok := fields[from]; ok {
			fields[to] = val
			delete(fields, from)
		}
	}
	return fields
}
