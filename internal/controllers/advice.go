package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finsight/backend/internal/forecast"
	"github.com/finsight/backend/internal/httputil"
)

// defaultSeed drives the train/test split and the forest when the
// caller does not pass their own seed.
const defaultSeed = 42

type AdviceResponse struct {
	Data forecast.Result `json:"data"`
}

// OptionsAdvice returns the allowed HTTP verbs.
func OptionsAdvice(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetAdvice trains the forecast model and returns its test error and a
// sample prediction. The optional "seed" query parameter makes the run
// reproducible; the same seed on the same ledger always returns the
// same result.
func (s *Server) GetAdvice(c *gin.Context) {
	seed := int64(defaultSeed)
	if raw, ok := c.GetQuery("seed"); ok {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, errors.New("the seed parameter must be an integer"))
			return
		}
		seed = parsed
	}

	result, err := forecast.TrainAndEvaluate(s.Ledger.Current(), seed, forecast.Options{})
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, AdviceResponse{Data: result})
}
