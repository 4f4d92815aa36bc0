package response

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/middleware"
)

// Render executes a page template with the data every layout needs: the
// pending flash messages, whether an admin is signed in and the CSRF field.
func Render(ctx *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	_, isAdmin := middleware.AdminFromContext(ctx)
	data["IsAdmin"] = isAdmin
	data["Flashes"] = PopFlashes(ctx)
	data["CSRFField"] = csrf.TemplateField(ctx.Request)

	ctx.HTML(status, name, data)
}
