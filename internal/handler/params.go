package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// idParam parses a numeric path parameter; on failure it writes a 400
// and returns false.
func idParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeBindError(ctx, &strconv.NumError{Func: "ParseUint", Num: raw, Err: strconv.ErrSyntax})
		return 0, false
	}
	return uint(id), true
}

// idListQuery parses a comma-separated id list query parameter, e.g.
// ?actors=1,3. Malformed entries are skipped.
func idListQuery(ctx *gin.Context, name string) []uint {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
