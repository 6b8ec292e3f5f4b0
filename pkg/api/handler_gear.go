package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/pkg/gear"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// installGearRequest is the POST /api/v1/gears body. PackagePath points
// at an already-staged package file on the local filesystem.
type installGearRequest struct {
	Manifest    *models.Manifest `json:"manifest" binding:"required"`
	PackagePath string           `json:"packagePath" binding:"required"`
}

type gearConfigRequest struct {
	Config map[string]any `json:"config" binding:"required"`
}

type gearResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Version     string           `json:"version"`
	Origin      string           `json:"origin"`
	Enabled     bool             `json:"enabled"`
	Checksum    string           `json:"checksum"`
	Manifest    *models.Manifest `json:"manifest,omitempty"`
	InstalledAt time.Time        `json:"installedAt"`
}

func toGearResponse(g *ent.Gear, withManifest bool) gearResponse {
	out := gearResponse{
		ID:          g.ID,
		Name:        g.Name,
		Version:     g.Version,
		Origin:      string(g.Origin),
		Enabled:     g.Enabled,
		Checksum:    g.Checksum,
		InstalledAt: g.InstalledAt,
	}
	if withManifest {
		out.Manifest = g.Manifest
	}
	return out
}

// listGearsHandler handles GET /api/v1/gears. Filters: origin, enabled.
func (s *Server) listGearsHandler(c *gin.Context) {
	filter := gear.ListFilter{}
	if v := c.Query("origin"); v != "" {
		origin := models.GearOrigin(v)
		if !origin.Valid() {
			abortBadRequest(c, "invalid origin: "+v)
			return
		}
		filter.Origin = &origin
	}
	if v := c.Query("enabled"); v != "" {
		switch v {
		case "true":
			enabled := true
			filter.Enabled = &enabled
		case "false":
			enabled := false
			filter.Enabled = &enabled
		default:
			abortBadRequest(c, "enabled must be true or false")
			return
		}
	}

	rows, err := s.deps.Gears.List(c.Request.Context(), filter)
	if err != nil {
		abortError(c, err)
		return
	}
	out := make([]gearResponse, len(rows))
	for i, g := range rows {
		out[i] = toGearResponse(g, false)
	}
	c.JSON(http.StatusOK, gin.H{"gears": out, "count": len(out)})
}

// installGearHandler handles POST /api/v1/gears. The manifest is
// validated and vulnerability-scanned; any finding blocks the install.
func (s *Server) installGearHandler(c *gin.Context) {
	var req installGearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}

	installed, err := s.deps.Gears.Install(c.Request.Context(), req.Manifest, req.PackagePath)
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toGearResponse(installed, true))
}

// getGearHandler handles GET /api/v1/gears/:id.
func (s *Server) getGearHandler(c *gin.Context) {
	g, err := s.deps.Gears.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGearResponse(g, true))
}

// uninstallGearHandler handles DELETE /api/v1/gears/:id.
func (s *Server) uninstallGearHandler(c *gin.Context) {
	if err := s.deps.Gears.Uninstall(c.Request.Context(), c.Param("id")); err != nil {
		abortError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// enableGearHandler handles POST /api/v1/gears/:id/enable.
func (s *Server) enableGearHandler(c *gin.Context) {
	if err := s.deps.Gears.Enable(c.Request.Context(), c.Param("id")); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "enabled": true})
}

// disableGearHandler handles POST /api/v1/gears/:id/disable. The gear
// drops out of the planner catalog and the sandbox immediately.
func (s *Server) disableGearHandler(c *gin.Context) {
	if err := s.deps.Gears.Disable(c.Request.Context(), c.Param("id")); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "enabled": false})
}

// getGearConfigHandler handles GET /api/v1/gears/:id/config.
func (s *Server) getGearConfigHandler(c *gin.Context) {
	cfg, err := s.deps.Gears.GetConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// setGearConfigHandler handles PUT /api/v1/gears/:id/config.
func (s *Server) setGearConfigHandler(c *gin.Context) {
	var req gearConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err.Error())
		return
	}
	if err := s.deps.Gears.UpdateConfig(c.Request.Context(), c.Param("id"), req.Config); err != nil {
		abortError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": req.Config})
}
