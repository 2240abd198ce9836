package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

const maxLogoSize = 5 << 20 // 5MB

var allowedLogoExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

type CompanyHandler struct {
	companyService service.CompanyService
	uploadDir      string
}

// NewCompanyHandler sets up the routing dependencies for company endpoints.
// Uploaded logos are stored under uploadDir and served at /uploads.
func NewCompanyHandler(companyService service.CompanyService, uploadDir string) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, uploadDir: uploadDir}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	company := rg.Group("/company", authn)
	{
		company.GET("", h.GetProfile)
		company.POST("", h.SaveProfile)
	}
}

// GetProfile handles GET /api/company
// @Summary      Get company profile
// @Description  Returns the authenticated user's company profile
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=model.CompanyProfile}
// @Failure      404  {object}  response.Response
// @Router       /api/company [get]
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authentication required"))
		return
	}

	profile, err := h.companyService.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, profile))
}

// SaveProfile handles POST /api/company (multipart/form-data)
// @Summary      Create or update company profile
// @Description  Creates the authenticated user's company profile, or updates it when one already exists. Accepts an optional image logo up to 5MB.
// @Tags         company
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        company_name  formData  string  true   "Company name"
// @Param        address       formData  string  false  "Address"
// @Param        mobile        formData  string  false  "Mobile number"
// @Param        email         formData  string  false  "Email"
// @Param        gst_number    formData  string  false  "GST number"
// @Param        bank_details  formData  string  false  "Bank details"
// @Param        logo          formData  file    false  "Logo image (jpeg/jpg/png/gif)"
// @Success      200           {object}  response.Response{data=model.CompanyProfile}
// @Failure      400           {object}  response.Response
// @Router       /api/company [post]
func (h *CompanyHandler) SaveProfile(c *gin.Context) {
	claims, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authentication required"))
		return
	}

	var req service.CompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Company name is required"))
		return
	}

	logoPath, err := h.saveLogo(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	profile, err := h.companyService.SaveProfile(c.Request.Context(), claims.UserID, req, logoPath)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, profile))
}

// saveLogo stores an uploaded logo, if any, and returns its public path.
// The empty string means no file was sent and the existing logo is kept.
func (h *CompanyHandler) saveLogo(c *gin.Context) (string, error) {
	file, err := c.FormFile("logo")
	if err != nil {
		return "", nil // no logo in this request
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedLogoExts[ext] {
		return "", fmt.Errorf("only image files are allowed (jpeg, jpg, png, gif)")
	}
	if file.Size > maxLogoSize {
		return "", fmt.Errorf("logo must be smaller than 5MB")
	}

	name := fmt.Sprintf("company_logo_%d%s", time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return "", fmt.Errorf("failed to store logo")
	}

	return "/uploads/" + name, nil
}
