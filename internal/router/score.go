package router

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/speechmetrics/commscore/internal/apperr"
	"github.com/speechmetrics/commscore/internal/dto"
	"github.com/speechmetrics/commscore/internal/scoring"
)

const (
	apiMessage = "CommScore API"
	apiVersion = "1.0.0"
)

type ScoreRouter struct {
	e      *echo.Echo
	engine *scoring.Engine
}

func NewScoreRouter(e *echo.Echo, engine *scoring.Engine) *ScoreRouter {
	return &ScoreRouter{
		e:      e,
		engine: engine,
	}
}

func (r *ScoreRouter) Bind() {
	r.e.GET("/", r.statusHandler)
	r.e.POST("/score", r.scoreHandler)
	r.e.GET("/rubric", r.rubricHandler)
}

// statusHandler godoc
//
//	@Summary	API status
//	@Tags		status
//	@Produce	json
//	@Success	200	{object}	dto.StatusResponse
//	@Router		/ [get]
func (r *ScoreRouter) statusHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.StatusResponse{
		Status:  "online",
		Message: apiMessage,
		Version: apiVersion,
	})
}

// scoreHandler godoc
//
//	@Summary		Score a transcript
//	@Description	Scores a spoken-communication transcript against the loaded rubric and returns the weighted per-criterion breakdown.
//	@Tags			scoring
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ScoreRequest	true	"Transcript to score (10-500 words)"
//	@Success		200		{object}	dto.ScoringResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		503		{object}	map[string]string
//	@Router			/score [post]
func (r *ScoreRouter) scoreHandler(c echo.Context) error {
	var req dto.ScoreRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := r.engine.Score(c.Request().Context(), req.Transcript)
	if err != nil {
		return err
	}

	slog.Info("Scored transcript",
		"scoringId", uuid.New(),
		"totalWords", res.TotalWords,
		"overallScore", res.OverallScore,
		"degraded", res.Degraded(),
	)

	return c.JSON(http.StatusOK, dto.FromScoringResult(res))
}

// rubricHandler godoc
//
//	@Summary	Current scoring rubric
//	@Tags		scoring
//	@Produce	json
//	@Success	200	{object}	dto.RubricResponse
//	@Router		/rubric [get]
func (r *ScoreRouter) rubricHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.FromRubric(r.engine.Rubric()))
}
