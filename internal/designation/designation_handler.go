package designation

import (
	"net/http"
	"strings"

	"grainsync-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type OptionsResponse struct {
	Department   string   `json:"department"`
	Designations []string `json:"designations"`
}

type KindResponse struct {
	Designation  string `json:"designation"`
	Kind         Kind   `json:"kind"`
	SpecialField *Field `json:"special_field,omitempty"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) GetOptions(c *gin.Context) {
	dept := strings.TrimSpace(c.Query("department"))
	response.Success(c, http.StatusOK, OptionsResponse{
		Department:   dept,
		Designations: Designations(dept),
	}, nil)
}

func (h *Handler) GetKind(c *gin.Context) {
	d := strings.TrimSpace(c.Query("designation"))
	resp := KindResponse{Designation: d, Kind: KindOf(d)}
	if f, ok := resp.Kind.Field(); ok {
		resp.SpecialField = &f
	}
	response.Success(c, http.StatusOK, resp, nil)
}
