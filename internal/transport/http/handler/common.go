package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"booknest/internal/apperr"
)

const dateLayout = "2006-01-02"

func uintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperr.InvalidInput("invalid " + name)
	}
	return uint(v), nil
}

// parseDOB 可选的 yyyy-mm-dd；必须是过去的日期
func parseDOB(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, apperr.Validation(map[string][]string{"dob": {"must be a yyyy-mm-dd date"}})
	}
	if !t.Before(time.Now()) {
		return nil, apperr.Validation(map[string][]string{"dob": {"dob must be in the past"}})
	}
	return &t, nil
}
