package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/handler/v1/response"
)

// parseID reads a numeric path parameter. Anything that is not a positive
// integer renders the 404 page, so ok == false means the response is written.
func parseID(ctx *gin.Context, resource, param string) (uint, bool) {
	raw := ctx.Param(param)

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrNotFound(resource, param, raw))
		return 0, false
	}

	return uint(id), true
}

func redirect(ctx *gin.Context, location string) {
	ctx.Redirect(http.StatusFound, location)
}

func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
