package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ebiyu/nanomesh/internal/nanomesh"
)

// Small download server: the Go stand-in for the interactive front-end's
// download buttons. Parameters arrive as query values, outputs are generated
// into a temp dir and served as attachment bytes. No preview rendering here.
func main() {
	r := gin.Default()
	r.GET("/nanomesh.stl", serveSTL)
	r.GET("/comb.dxf", serveDXF)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func fquery(c *gin.Context, name string, dst *float64) error {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("bad %s: %w", name, err)
	}
	*dst = v
	return nil
}

func iquery(c *gin.Context, name string, dst *int) error {
	s := c.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("bad %s: %w", name, err)
	}
	*dst = v
	return nil
}

func serveSTL(c *gin.Context) {
	cfg := nanomesh.DefaultConfig()
	var seed int
	params := []error{
		fquery(c, "width", &cfg.Sheet.Width),
		fquery(c, "depth", &cfg.Sheet.Depth),
		fquery(c, "thickness", &cfg.Sheet.Thickness),
		fquery(c, "diameter", &cfg.Fiber.Diameter),
		iquery(c, "fibers", &cfg.Fiber.Count),
		iquery(c, "seed", &seed),
	}
	for _, err := range params {
		if err != nil {
			c.String(http.StatusBadRequest, "%v", err)
			return
		}
	}
	if seed > 0 {
		cfg.Seed = uint64(seed)
	}
	if err := cfg.Validate(); err != nil {
		c.String(http.StatusBadRequest, "%v", err)
		return
	}

	mesh, _ := nanomesh.BuildNanomesh(cfg)
	serveFile(c, "nanomesh.stl", "application/sla", func(path string) error {
		return nanomesh.WriteSTL(path, mesh)
	})
}

func serveDXF(c *gin.Context) {
	cfg := nanomesh.DefaultConfig()
	params := []error{
		fquery(c, "w", &cfg.Comb.FingerWidth),
		fquery(c, "g", &cfg.Comb.Gap),
		fquery(c, "L", &cfg.Comb.FingerLength),
		iquery(c, "N", &cfg.Comb.FingerCount),
		fquery(c, "B", &cfg.Comb.BusWidth),
		fquery(c, "mt", &cfg.Comb.MarginTop),
		fquery(c, "mb", &cfg.Comb.MarginBottom),
	}
	for _, err := range params {
		if err != nil {
			c.String(http.StatusBadRequest, "%v", err)
			return
		}
	}
	if v := c.Query("version"); v != "" {
		cfg.DXFVersion = v
	}
	if err := cfg.Validate(); err != nil {
		c.String(http.StatusBadRequest, "%v", err)
		return
	}

	comb := nanomesh.BuildComb(cfg.Comb)
	serveFile(c, nanomesh.DefaultDXFName(cfg.Comb), "application/dxf", func(path string) error {
		return nanomesh.WriteCombDXF(path, comb, cfg.DXFVersion)
	})
}

// serveFile writes the artifact into a temp dir and hands its bytes to the
// client, mirroring the tempfile round-trip the original front-end used.
func serveFile(c *gin.Context, name, mime string, write func(path string) error) {
	dir, err := os.MkdirTemp("", "nanomesh")
	if err != nil {
		c.String(http.StatusInternalServerError, "%v", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, name)
	if err := write(path); err != nil {
		c.String(http.StatusInternalServerError, "%v", err)
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		c.String(http.StatusInternalServerError, "%v", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, mime, data)
}
