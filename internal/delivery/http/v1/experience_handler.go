package v1

import (
	"net/http"

	"go-portfolio/internal/delivery/http/response"
	"go-portfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	*ContentHandler[domain.WorkExperience]
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(public, protected *gin.RouterGroup, uc domain.ExperienceUsecase) {
	handler := &ExperienceHandler{
		ContentHandler: NewContentHandler[domain.WorkExperience](public, protected, "/experience", "Experience", uc),
		experienceUC:   uc,
	}

	protected.POST("/experience/:id/skills", handler.AddSkill)
	protected.PUT("/experience-skills/:id", handler.UpdateSkill)
	protected.DELETE("/experience-skills/:id", handler.DeleteSkill)
}

// AddSkill godoc
// @Summary      Add a skill to an experience
// @Tags         experience
// @Accept       json
// @Produce      json
// @Param        id     path      int                     true  "Experience ID"
// @Param        skill  body      domain.ExperienceSkill  true  "Skill"
// @Success      201    {object}  domain.ExperienceSkill
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /experience/{id}/skills [post]
// @Security     BearerAuth
func (h *ExperienceHandler) AddSkill(c *gin.Context) {
	experienceID, ok := pathID(c)
	if !ok {
		return
	}
	var skill domain.ExperienceSkill
	if !bindJSON(c, &skill) {
		return
	}
	if err := h.experienceUC.AddSkill(c.Request.Context(), experienceID, &skill); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, skill)
}

// UpdateSkill godoc
// @Summary      Update an experience skill
// @Tags         experience
// @Accept       json
// @Produce      json
// @Param        id     path      int                     true  "Experience skill ID"
// @Param        skill  body      domain.ExperienceSkill  true  "Skill"
// @Success      200    {object}  domain.ExperienceSkill
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /experience-skills/{id} [put]
// @Security     BearerAuth
func (h *ExperienceHandler) UpdateSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var skill domain.ExperienceSkill
	if !bindJSON(c, &skill) {
		return
	}
	if err := h.experienceUC.UpdateSkill(c.Request.Context(), id, &skill); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, skill)
}

// DeleteSkill godoc
// @Summary      Delete an experience skill
// @Tags         experience
// @Produce      json
// @Param        id   path      int  true  "Experience skill ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experience-skills/{id} [delete]
// @Security     BearerAuth
func (h *ExperienceHandler) DeleteSkill(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.experienceUC.DeleteSkill(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience skill deleted successfully", nil)
}
