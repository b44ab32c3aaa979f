package http

import (
	"net/http"

	"github.com/coursepilot/coursepilot/internal/server/domain"
	"github.com/coursepilot/coursepilot/internal/server/service"
	"github.com/coursepilot/coursepilot/pkg/httpx"
)

// SubmittedQuestion is one answered question in a submitted attempt.
type SubmittedQuestion struct {
	Question       string   `json:"question" validate:"required"`
	Options        []string `json:"options" validate:"len=4"`
	CorrectAnswer  string   `json:"correctAnswer" validate:"required"`
	SelectedOption string   `json:"selectedOption"`
}

// SubmitResultRequest carries one finished assessment attempt.
type SubmitResultRequest struct {
	Name              string                    `json:"name" validate:"required"`
	Subject           string                    `json:"subject" validate:"required"`
	Level             string                    `json:"level"`
	Percent           float64                   `json:"percent" validate:"min=0,max=100"`
	StartTime         string                    `json:"start_time"`
	EndTime           string                    `json:"end_time"`
	GoodAt            []string                  `json:"goodAt"`
	Improvement       []string                  `json:"improvement"`
	CourseSuggestions []domain.CourseSuggestion `json:"courseSuggestions"`
	SubmittedData     []SubmittedQuestion       `json:"submittedData" validate:"dive"`
}

type SubmitResultHandler struct {
	ResultService *service.ResultService
}

// ServeHTTP persists an attempt and its question rows atomically.
//
//	@Summary	Submit an assessment result
//	@Tags		Results
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SubmitResultRequest	true	"Finished attempt"
//	@Success	200		{object}	httpx.Message
//	@Failure	400		{object}	httpx.Message
//	@Failure	401		{object}	httpx.Message
//	@Failure	500		{object}	httpx.Message	"No rows are kept on failure"
//	@Router		/component/Dashboard [post].
func (h *SubmitResultHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())

	var req SubmitResultRequest
	if err := decodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Malformed request body")
		return
	}

	in := service.SubmitInput{
		Name:              req.Name,
		Subject:           req.Subject,
		Level:             req.Level,
		Percent:           req.Percent,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Strengths:         req.GoodAt,
		Improvements:      req.Improvement,
		CourseSuggestions: req.CourseSuggestions,
	}
	for _, q := range req.SubmittedData {
		in.Questions = append(in.Questions, service.AnsweredQuestion{
			Question:       q.Question,
			Option1:        q.Options[0],
			Option2:        q.Options[1],
			Option3:        q.Options[2],
			Option4:        q.Options[3],
			CorrectOption:  q.CorrectAnswer,
			SelectedOption: q.SelectedOption,
		})
	}

	if _, err := h.ResultService.Submit(r.Context(), p.AccountID, in); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Result uploaded successfully")
}

type SuggestionHandler struct {
	ResultService *service.ResultService
}

// ServeHTTP returns the decoded course suggestions of the caller's
// results.
//
//	@Summary	List course suggestions
//	@Tags		Results
//	@Produce	json
//	@Success	200	{array}		domain.CourseSuggestion
//	@Failure	401	{object}	httpx.Message
//	@Failure	404	{object}	httpx.Message	"No results yet"
//	@Failure	500	{object}	httpx.Message
//	@Router		/component/suggestion [post].
func (h *SuggestionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())

	suggestions, err := h.ResultService.ListSuggestions(r.Context(), p.AccountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, suggestions)
}

// ResultResponse is one stored attempt.
type ResultResponse struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	Subject           string                    `json:"subject"`
	Level             string                    `json:"level"`
	Percent           float64                   `json:"percent"`
	StartTime         string                    `json:"start_time"`
	EndTime           string                    `json:"end_time"`
	GoodAt            []string                  `json:"goodAt"`
	Improvement       []string                  `json:"improvement"`
	CourseSuggestions []domain.CourseSuggestion `json:"courseSuggestions"`
}

// QuestionResponse is one answered question of a stored attempt.
type QuestionResponse struct {
	Question       string `json:"question"`
	Option1        string `json:"option1"`
	Option2        string `json:"option2"`
	Option3        string `json:"option3"`
	Option4        string `json:"option4"`
	CorrectOption  string `json:"correctoption"`
	SelectedOption string `json:"selectedoption"`
}

// ProgressEntry is a result joined with its questions.
type ProgressEntry struct {
	Progress  ResultResponse     `json:"progress"`
	Questions []QuestionResponse `json:"questions"`
}

// ProgressResponse is the full progress view of an account.
type ProgressResponse struct {
	Message string          `json:"message"`
	Data    []ProgressEntry `json:"data"`
}

type ProgressHandler struct {
	ResultService *service.ResultService
}

// ServeHTTP returns every attempt of the caller with its questions.
//
//	@Summary	Read assessment progress
//	@Tags		Results
//	@Produce	json
//	@Success	200	{object}	ProgressResponse
//	@Failure	401	{object}	httpx.Message
//	@Failure	404	{object}	httpx.Message	"No results yet"
//	@Failure	500	{object}	httpx.Message
//	@Router		/component/Progress [post].
func (h *ProgressHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFromContext(r.Context())

	progress, err := h.ResultService.Progress(r.Context(), p.AccountID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if len(progress) == 0 {
		httpx.WriteMessage(w, http.StatusNotFound, "No data found for this user")
		return
	}

	response := ProgressResponse{Message: "Fetched data successfully"}
	for _, entry := range progress {
		pe := ProgressEntry{Progress: toResultResponse(entry.Result)}
		for _, q := range entry.Questions {
			pe.Questions = append(pe.Questions, QuestionResponse{
				Question:       q.Question,
				Option1:        q.Option1,
				Option2:        q.Option2,
				Option3:        q.Option3,
				Option4:        q.Option4,
				CorrectOption:  q.CorrectOption,
				SelectedOption: q.SelectedOption,
			})
		}
		response.Data = append(response.Data, pe)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

func toResultResponse(res domain.Result) ResultResponse {
	return ResultResponse{
		ID:                res.ID,
		Name:              res.Name,
		Subject:           res.Subject,
		Level:             res.Level,
		Percent:           res.Percent,
		StartTime:         res.StartTime,
		EndTime:           res.EndTime,
		GoodAt:            res.Strengths,
		Improvement:       res.Improvements,
		CourseSuggestions: res.CourseSuggestions,
	}
}
