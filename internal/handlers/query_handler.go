package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"passport-query-api/internal/services"
	"passport-query-api/pkg/lambda"
)

// QueryHandler handles query submission requests
type QueryHandler struct {
	queryService services.QueryService
	logger       *logrus.Logger
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(queryService services.QueryService, logger *logrus.Logger) *QueryHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &QueryHandler{
		queryService: queryService,
		logger:       logger,
	}
}

// submit runs the shared intake pipeline and maps the outcome to a status
// code and response body. Validation failures keep their specific message;
// store and unexpected failures surface only the generic 500 body, with the
// underlying cause logged here.
func (h *QueryHandler) submit(ctx context.Context, body []byte) (int, MessageResponse) {
	var req services.SubmitQueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// A wrong-typed field leaves the field unusable; treat it the
			// same as an absent one.
			return http.StatusBadRequest, MessageResponse{Message: services.MsgAllFieldsRequired}
		}

		h.logger.WithField("error", err.Error()).Error("Unexpected error parsing request body")
		return http.StatusInternalServerError, MessageResponse{Message: MsgInternalError}
	}

	query, err := h.queryService.SubmitQuery(ctx, &req)
	if err != nil {
		if isValidationError(err) {
			return http.StatusBadRequest, MessageResponse{Message: err.Error()}
		}

		if isStoreError(err) {
			h.logger.WithField("error", err.Error()).Error("Store error")
		} else {
			h.logger.WithField("error", err.Error()).Error("Unexpected error")
		}
		return http.StatusInternalServerError, MessageResponse{Message: MsgInternalError}
	}

	return http.StatusOK, MessageResponse{Message: MsgSubmitted, ID: query.ID}
}

// @Summary Submit a query
// @Description Validate a submitted contact query and persist it as a new record
// @Tags queries
// @Accept json
// @Produce json
// @Param query body services.SubmitQueryRequest true "Query form fields"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /queries [post]
func (h *QueryHandler) SubmitQuery(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Unexpected error reading request body")
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: MsgInternalError})
		return
	}

	status, resp := h.submit(c.Request.Context(), body)
	c.JSON(status, resp)
}

// HandleSubmit handles query submission for Lambda
func (h *QueryHandler) HandleSubmit(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	status, resp := h.submit(ctx, req.Body)
	return lambda.NewJSONResponse(status, resp), nil
}

// HandlePreflight answers the CORS preflight for browser clients with the
// static policy; the actual data responses carry the wildcard origin
// themselves.
func (h *QueryHandler) HandlePreflight(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	resp := lambda.NewJSONResponse(http.StatusOK, MessageResponse{Message: "OK"})
	resp.Headers["Access-Control-Allow-Headers"] = "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token"
	resp.Headers["Access-Control-Allow-Methods"] = "OPTIONS,GET,POST"
	return resp, nil
}
