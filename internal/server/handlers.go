package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/davideasaf/neuralnotes/pkg/content"
	"github.com/davideasaf/neuralnotes/pkg/media"
)

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleList(c echo.Context) error {
	kind, err := content.ParseKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorBody{Error: err.Error()})
	}

	items := s.resolver.LoadAll(c.Request().Context(), kind)

	if tag := c.QueryParam("tag"); tag != "" {
		filtered := make([]content.Item, 0, len(items))
		for _, item := range items {
			for _, t := range item.Meta.Base().Tags {
				if t == tag {
					filtered = append(filtered, item)
					break
				}
			}
		}
		items = filtered
	}

	return c.JSON(http.StatusOK, items)
}

func (s *Server) handleItem(c echo.Context) error {
	kind, err := content.ParseKind(c.Param("kind"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorBody{Error: err.Error()})
	}

	item := s.resolver.GetBySlug(c.Request().Context(), kind, c.Param("slug"))
	if item == nil {
		return c.JSON(http.StatusNotFound, errorBody{Error: "content not found"})
	}

	return c.JSON(http.StatusOK, itemView{
		Item:    *item,
		Primary: media.SelectPrimary(item.Meta.Base().Assets()),
	})
}

// itemView decorates a content item with its selected primary media.
type itemView struct {
	content.Item
	Primary media.Primary `json:"primaryMedia"`
}

func (s *Server) handleConfig(c echo.Context) error {
	cfg := s.sitecfg.Load(c.Request().Context())
	return c.JSON(http.StatusOK, cfg)
}

// handleVideoValidation lets the client ask whether a video URL is
// safe to embed. Validation failures are part of the API contract, not
// server errors: they come back as 422 with the typed code.
func (s *Server) handleVideoValidation(c echo.Context) error {
	raw := c.QueryParam("url")

	embed, verr := media.ValidateVideoURL(raw)
	if verr != nil {
		return c.JSON(http.StatusUnprocessableEntity, verr)
	}
	return c.JSON(http.StatusOK, embed)
}
