package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-web/internal/delivery/http/middleware"
	"careerai-web/internal/delivery/http/response"
	"careerai-web/internal/domain"
	"careerai-web/pkg/apperror"
)

type GuidanceHandler struct {
	guidanceUC domain.GuidanceUsecase
}

func NewGuidanceHandler(r *gin.RouterGroup, guidanceUC domain.GuidanceUsecase) {
	handler := &GuidanceHandler{guidanceUC: guidanceUC}

	guidance := r.Group("/guidance")
	{
		guidance.GET("", handler.View)
		guidance.POST("/user-type", handler.ChooseUserType)
		guidance.POST("/answer", handler.SelectAnswer)
		guidance.POST("/next", handler.Next)
		guidance.POST("/previous", handler.Previous)
		guidance.PUT("/profile", handler.UpdateProfile)
		guidance.POST("/profile/submit", handler.SubmitProfile)
		guidance.POST("/back", handler.Back)
		guidance.POST("/restart", handler.Restart)
	}
}

type ChooseUserTypeRequest struct {
	UserType domain.UserType `json:"user_type" binding:"required"`
}

type SelectAnswerRequest struct {
	Option string `json:"option" binding:"required"`
}

// View godoc
// @Summary      Get the guidance wizard
// @Description  Current phase, question and results of the career guidance wizard
// @Tags         guidance
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.GuidanceView}
// @Router       /guidance [get]
func (h *GuidanceHandler) View(c *gin.Context) {
	view, err := h.guidanceUC.View(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Guidance wizard", view)
}

// ChooseUserType godoc
// @Summary      Choose student or professional
// @Tags         guidance
// @Accept       json
// @Produce      json
// @Param        request  body      ChooseUserTypeRequest  true  "User type"
// @Success      200      {object}  response.Response{data=domain.GuidanceView}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /guidance/user-type [post]
func (h *GuidanceHandler) ChooseUserType(c *gin.Context) {
	var req ChooseUserTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	view, err := h.guidanceUC.ChooseUserType(c.Request.Context(), middleware.SessionID(c), req.UserType)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User type selected", view)
}

// SelectAnswer godoc
// @Summary      Answer the current question
// @Tags         guidance
// @Accept       json
// @Produce      json
// @Param        request  body      SelectAnswerRequest  true  "Chosen option"
// @Success      200      {object}  response.Response{data=domain.GuidanceView}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /guidance/answer [post]
func (h *GuidanceHandler) SelectAnswer(c *gin.Context) {
	var req SelectAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	view, err := h.guidanceUC.SelectAnswer(c.Request.Context(), middleware.SessionID(c), req.Option)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Answer recorded", view)
}

// Next godoc
// @Summary      Advance to the next question
// @Description  On the last question this completes the assessment
// @Tags         guidance
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.GuidanceView}
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /guidance/next [post]
func (h *GuidanceHandler) Next(c *gin.Context) {
	view, note, err := h.guidanceUC.NextQuestion(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Notify(c, http.StatusOK, note, view)
}

// Previous godoc
// @Summary      Go back one question
// @Tags         guidance
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.GuidanceView}
// @Failure      400  {object}  response.Response
// @Router       /guidance/previous [post]
func (h *GuidanceHandler) Previous(c *gin.Context) {
	view, err := h.guidanceUC.PreviousQuestion(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Previous question", view)
}

// UpdateProfile godoc
// @Summary      Save the professional profile draft
// @Tags         guidance
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ProfessionalProfileDraft  true  "Profile draft"
// @Success      200      {object}  response.Response{data=domain.GuidanceView}
// @Failure      409      {object}  response.Response
// @Router       /guidance/profile [put]
func (h *GuidanceHandler) UpdateProfile(c *gin.Context) {
	var draft domain.ProfessionalProfileDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	view, err := h.guidanceUC.UpdateProfileDraft(c.Request.Context(), middleware.SessionID(c), draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile draft saved", view)
}

// SubmitProfile godoc
// @Summary      Submit the professional profile
// @Description  Projects, domain and experience are required
// @Tags         guidance
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ProfessionalProfileDraft  true  "Profile"
// @Success      200      {object}  response.Response{data=domain.GuidanceView}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /guidance/profile/submit [post]
func (h *GuidanceHandler) SubmitProfile(c *gin.Context) {
	var draft domain.ProfessionalProfileDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	view, note, err := h.guidanceUC.SubmitProfile(c.Request.Context(), middleware.SessionID(c), draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Notify(c, http.StatusOK, note, view)
}

// Back godoc
// @Summary      Return to user type selection
// @Tags         guidance
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.GuidanceView}
// @Failure      409  {object}  response.Response
// @Router       /guidance/back [post]
func (h *GuidanceHandler) Back(c *gin.Context) {
	view, err := h.guidanceUC.Back(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Back to selection", view)
}

// Restart godoc
// @Summary      Take another assessment
// @Tags         guidance
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.GuidanceView}
// @Failure      409  {object}  response.Response
// @Router       /guidance/restart [post]
func (h *GuidanceHandler) Restart(c *gin.Context) {
	view, err := h.guidanceUC.Restart(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Wizard restarted", view)
}
