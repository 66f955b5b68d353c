// Package api provides the REST API server for powerscale
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/RocknRolo/PowerScale/pkg/theory"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title PowerScale API
// @version 1.0
// @description API for computing diatonic modes of the major, melodic minor and harmonic minor scales
// @host localhost:8080
// @BasePath /api/v1

// ToneJSON is the wire form of a single scale tone
type ToneJSON struct {
	Letter     string `json:"letter"`
	Accidental int    `json:"accidental"`
	Name       string `json:"name"`
}

// ScaleResponse is the wire form of a computed scale
type ScaleResponse struct {
	Root     string     `json:"root"`
	Family   string     `json:"family"`
	Mode     int        `json:"mode"`
	ModeName string     `json:"mode_name"`
	Tones    []ToneJSON `json:"tones"`
	Rendered string     `json:"rendered"`
}

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/scale", handleScale)
		v1.GET("/scale/midi", handleScaleMIDI)
		v1.GET("/families", listFamilies)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r.Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "powerscale",
	})
}

// listFamilies godoc
// @Summary List supported scale families
// @Description Returns the supported parent scale families and their mode names
// @Tags info
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/families [get]
func listFamilies(c *gin.Context) {
	families := make([]map[string]any, 0, 3)
	for _, family := range theory.Families() {
		modes := make([]string, 7)
		for mode := 1; mode <= 7; mode++ {
			modes[mode-1] = theory.ModeName(family, mode)
		}
		families = append(families, map[string]any{
			"name":  string(family),
			"modes": modes,
		})
	}
	c.JSON(http.StatusOK, gin.H{"families": families})
}

// handleScale godoc
// @Summary Compute a scale
// @Description Computes the tone sequence of a diatonic mode from a root note
// @Tags scale
// @Produce json
// @Param root query string false "Root note, e.g. C, g#, Bbb (default C)"
// @Param mode query int false "Mode number, any integer, interpreted cyclically (default 1)"
// @Param family query string false "Scale family: major, melodic-minor or harmonic-minor (default major)"
// @Param format query string false "Set to 'string' for the space-joined rendering as plain text"
// @Success 200 {object} ScaleResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/scale [get]
func handleScale(c *gin.Context) {
	scale, query, ok := computeFromQuery(c)
	if !ok {
		return
	}

	if c.Query("format") == "string" {
		c.String(http.StatusOK, scale.String())
		return
	}

	tones := make([]ToneJSON, len(scale))
	for i, tone := range scale {
		tones[i] = ToneJSON{
			Letter:     string(tone.Letter),
			Accidental: tone.Accidental,
			Name:       tone.String(),
		}
	}

	c.JSON(http.StatusOK, ScaleResponse{
		Root:     scale[0].String(),
		Family:   string(query.family),
		Mode:     theory.NormalizeMode(query.mode),
		ModeName: theory.ModeName(query.family, query.mode),
		Tones:    tones,
		Rendered: scale.String(),
	})
}

// handleScaleMIDI godoc
// @Summary Download a scale as a MIDI file
// @Description Computes the scale and returns it as a Standard MIDI File played ascending
// @Tags scale
// @Produce audio/midi
// @Param root query string false "Root note (default C)"
// @Param mode query int false "Mode number (default 1)"
// @Param family query string false "Scale family (default major)"
// @Param bpm query number false "Tempo in beats per minute (default 120)"
// @Param octave query int false "Starting octave (default 4)"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/scale/midi [get]
func handleScaleMIDI(c *gin.Context) {
	scale, _, ok := computeFromQuery(c)
	if !ok {
		return
	}

	bpm, err := strconv.ParseFloat(c.DefaultQuery("bpm", "120"), 64)
	if err != nil || bpm <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bpm"})
		return
	}
	octave, err := strconv.Atoi(c.DefaultQuery("octave", strconv.Itoa(theory.DefaultOctave)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid octave"})
		return
	}

	data, err := theory.ScaleSMF(scale, bpm, octave)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("%s.mid", scale[0])
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "audio/midi", data)
}

type scaleQuery struct {
	root   string
	mode   int
	family theory.Family
}

func computeFromQuery(c *gin.Context) (theory.Scale, scaleQuery, bool) {
	query := scaleQuery{
		root:   c.DefaultQuery("root", "C"),
		family: theory.ParseFamily(c.DefaultQuery("family", "major")),
	}

	mode, err := strconv.Atoi(c.DefaultQuery("mode", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be an integer"})
		return theory.Scale{}, query, false
	}
	query.mode = mode

	scale, err := theory.ComputeScale(query.root, query.mode, query.family)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, theory.ErrInvalidNote) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return theory.Scale{}, query, false
	}

	return scale, query, true
}
