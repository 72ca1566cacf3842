package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/bytedance/sonic"

	contactDTO "folio_backend/internals/features/contact/dto"
	contactModel "folio_backend/internals/features/contact/model"
	profileDTO "folio_backend/internals/features/profile/dto"
	profileModel "folio_backend/internals/features/profile/model"
	projectDTO "folio_backend/internals/features/projects/dto"
	projectModel "folio_backend/internals/features/projects/model"
	resumeDTO "folio_backend/internals/features/resume/dto"
	resumeModel "folio_backend/internals/features/resume/model"
	serviceDTO "folio_backend/internals/features/services/dto"
	serviceModel "folio_backend/internals/features/services/model"
	settingsDTO "folio_backend/internals/features/settings/dto"
	settingsModel "folio_backend/internals/features/settings/model"
	testimonialDTO "folio_backend/internals/features/testimonials/dto"
	testimonialModel "folio_backend/internals/features/testimonials/model"
	authDTO "folio_backend/internals/features/users/auth/dto"
)

// API paths, shared by reads and the invalidation done on writes.
const (
	ServicesPath     = "/api/services"
	ProjectsPath     = "/api/projects"
	TestimonialsPath = "/api/testimonials"
	ProfilePath      = "/api/profile"
	ContactPath      = "/api/contact"
	MessagesPath     = "/api/messages"
	SettingsPath     = "/api/settings"
	ResumePath       = "/api/resume"
)

/* =======================
   Auth
======================= */

// Login authenticates the admin session. The session cookie lives in
// the client's jar, subsequent calls carry it automatically.
func (c *Client) Login(ctx context.Context, email, password string) error {
	payload := authDTO.LoginRequest{Email: email, Password: password}
	if err := validate.Struct(payload); err != nil {
		return validationAPIError(err)
	}
	_, err := c.do(ctx, http.MethodPost, "/api/auth/login", payload)
	return err
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	return err
}

// CheckAuth reports whether the current session is valid.
func (c *Client) CheckAuth(ctx context.Context) (bool, error) {
	_, err := c.do(ctx, http.MethodGet, "/api/auth/check", nil)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok && apiErr.Status == http.StatusUnauthorized {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

/* =======================
   Upload
======================= */

// Upload sends a single image and returns the public URL assigned to it.
func (c *Client) Upload(ctx context.Context, filename string, content []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(content); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env envelope
		if sonic.Unmarshal(body, &env) == nil && env.Error != "" {
			apiErr.Message = env.Error
			apiErr.Code = env.ErrorCode
		}
		return "", apiErr
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := sonic.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	return out.URL, nil
}

/* =======================
   Services
======================= */

func (c *Client) Services(ctx context.Context) ([]serviceModel.ServiceModel, error) {
	return Get[[]serviceModel.ServiceModel](ctx, c, ServicesPath)
}

func (c *Client) Service(ctx context.Context, id string) (serviceModel.ServiceModel, error) {
	return Get[serviceModel.ServiceModel](ctx, c, ServicesPath+"/"+id)
}

func (c *Client) CreateService(ctx context.Context, req serviceDTO.CreateServiceRequest) (serviceModel.ServiceModel, error) {
	return Create[serviceModel.ServiceModel](ctx, c, ServicesPath, req)
}

func (c *Client) UpdateService(ctx context.Context, id string, req serviceDTO.CreateServiceRequest) (serviceModel.ServiceModel, error) {
	return Update[serviceModel.ServiceModel](ctx, c, ServicesPath, ServicesPath+"/"+id, req)
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.Delete(ctx, ServicesPath, ServicesPath+"/"+id)
}

/* =======================
   Projects
======================= */

func (c *Client) Projects(ctx context.Context) ([]projectModel.ProjectModel, error) {
	return Get[[]projectModel.ProjectModel](ctx, c, ProjectsPath)
}

func (c *Client) Project(ctx context.Context, id string) (projectModel.ProjectModel, error) {
	return Get[projectModel.ProjectModel](ctx, c, ProjectsPath+"/"+id)
}

func (c *Client) CreateProject(ctx context.Context, req projectDTO.CreateProjectRequest) (projectModel.ProjectModel, error) {
	return Create[projectModel.ProjectModel](ctx, c, ProjectsPath, req)
}

func (c *Client) UpdateProject(ctx context.Context, id string, req projectDTO.CreateProjectRequest) (projectModel.ProjectModel, error) {
	return Update[projectModel.ProjectModel](ctx, c, ProjectsPath, ProjectsPath+"/"+id, req)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.Delete(ctx, ProjectsPath, ProjectsPath+"/"+id)
}

/* =======================
   Testimonials
======================= */

func (c *Client) Testimonials(ctx context.Context) ([]testimonialModel.TestimonialModel, error) {
	return Get[[]testimonialModel.TestimonialModel](ctx, c, TestimonialsPath)
}

func (c *Client) CreateTestimonial(ctx context.Context, req testimonialDTO.CreateTestimonialRequest) (testimonialModel.TestimonialModel, error) {
	return Create[testimonialModel.TestimonialModel](ctx, c, TestimonialsPath, req)
}

func (c *Client) UpdateTestimonial(ctx context.Context, id string, req testimonialDTO.CreateTestimonialRequest) (testimonialModel.TestimonialModel, error) {
	return Update[testimonialModel.TestimonialModel](ctx, c, TestimonialsPath, TestimonialsPath+"/"+id, req)
}

func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	return c.Delete(ctx, TestimonialsPath, TestimonialsPath+"/"+id)
}

/* =======================
   Singletons
======================= */

func (c *Client) Profile(ctx context.Context) (*profileModel.ProfileModel, error) {
	return Get[*profileModel.ProfileModel](ctx, c, ProfilePath)
}

func (c *Client) UpsertProfile(ctx context.Context, req profileDTO.UpsertProfileRequest) (profileModel.ProfileModel, error) {
	return Update[profileModel.ProfileModel](ctx, c, ProfilePath, ProfilePath, req)
}

func (c *Client) ContactInfo(ctx context.Context) (*contactModel.ContactInfoModel, error) {
	return Get[*contactModel.ContactInfoModel](ctx, c, ContactPath)
}

func (c *Client) UpsertContactInfo(ctx context.Context, req contactDTO.UpsertContactInfoRequest) (contactModel.ContactInfoModel, error) {
	return Update[contactModel.ContactInfoModel](ctx, c, ContactPath, ContactPath, req)
}

func (c *Client) Settings(ctx context.Context) (*settingsModel.SettingsModel, error) {
	return Get[*settingsModel.SettingsModel](ctx, c, SettingsPath)
}

func (c *Client) UpsertSettings(ctx context.Context, req settingsDTO.UpsertSettingsRequest) (settingsModel.SettingsModel, error) {
	return Update[settingsModel.SettingsModel](ctx, c, SettingsPath, SettingsPath, req)
}

/* =======================
   Contact messages
======================= */

// SendMessage is the public visitor form. It does not touch the cache,
// visitors never read the message list.
func (c *Client) SendMessage(ctx context.Context, req contactDTO.CreateContactMessageRequest) (contactModel.ContactMessageModel, error) {
	return Create[contactModel.ContactMessageModel](ctx, c, MessagesPath, req)
}

func (c *Client) Messages(ctx context.Context) ([]contactModel.ContactMessageModel, error) {
	return Get[[]contactModel.ContactMessageModel](ctx, c, MessagesPath)
}

func (c *Client) MarkMessageRead(ctx context.Context, id string, read bool) (contactModel.ContactMessageModel, error) {
	req := contactDTO.UpdateContactMessageRequest{Read: &read}
	return Patch[contactModel.ContactMessageModel](ctx, c, MessagesPath, MessagesPath+"/"+id, req)
}

func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	return c.Delete(ctx, MessagesPath, MessagesPath+"/"+id)
}

/* =======================
   Resume
======================= */

func resumePath(kind resumeDTO.Kind) string {
	return fmt.Sprintf("%s/%s", ResumePath, kind)
}

func (c *Client) Education(ctx context.Context) ([]resumeModel.EducationModel, error) {
	return Get[[]resumeModel.EducationModel](ctx, c, resumePath(resumeDTO.KindEducation))
}

func (c *Client) Certifications(ctx context.Context) ([]resumeModel.CertificationModel, error) {
	return Get[[]resumeModel.CertificationModel](ctx, c, resumePath(resumeDTO.KindCertification))
}

func (c *Client) Skills(ctx context.Context) ([]resumeModel.SkillModel, error) {
	return Get[[]resumeModel.SkillModel](ctx, c, resumePath(resumeDTO.KindSkill))
}

func (c *Client) Experience(ctx context.Context) ([]resumeModel.ExperienceModel, error) {
	return Get[[]resumeModel.ExperienceModel](ctx, c, resumePath(resumeDTO.KindExperience))
}

func (c *Client) CreateEducation(ctx context.Context, req resumeDTO.CreateEducationRequest) (resumeModel.EducationModel, error) {
	return Create[resumeModel.EducationModel](ctx, c, resumePath(resumeDTO.KindEducation), req)
}

func (c *Client) CreateCertification(ctx context.Context, req resumeDTO.CreateCertificationRequest) (resumeModel.CertificationModel, error) {
	return Create[resumeModel.CertificationModel](ctx, c, resumePath(resumeDTO.KindCertification), req)
}

func (c *Client) CreateSkill(ctx context.Context, req resumeDTO.CreateSkillRequest) (resumeModel.SkillModel, error) {
	return Create[resumeModel.SkillModel](ctx, c, resumePath(resumeDTO.KindSkill), req)
}

func (c *Client) CreateExperience(ctx context.Context, req resumeDTO.CreateExperienceRequest) (resumeModel.ExperienceModel, error) {
	return Create[resumeModel.ExperienceModel](ctx, c, resumePath(resumeDTO.KindExperience), req)
}

func (c *Client) UpdateEducation(ctx context.Context, id string, req resumeDTO.CreateEducationRequest) (resumeModel.EducationModel, error) {
	collection := resumePath(resumeDTO.KindEducation)
	return Update[resumeModel.EducationModel](ctx, c, collection, collection+"/"+id, req)
}

func (c *Client) UpdateCertification(ctx context.Context, id string, req resumeDTO.CreateCertificationRequest) (resumeModel.CertificationModel, error) {
	collection := resumePath(resumeDTO.KindCertification)
	return Update[resumeModel.CertificationModel](ctx, c, collection, collection+"/"+id, req)
}

func (c *Client) UpdateSkill(ctx context.Context, id string, req resumeDTO.CreateSkillRequest) (resumeModel.SkillModel, error) {
	collection := resumePath(resumeDTO.KindSkill)
	return Update[resumeModel.SkillModel](ctx, c, collection, collection+"/"+id, req)
}

func (c *Client) UpdateExperience(ctx context.Context, id string, req resumeDTO.CreateExperienceRequest) (resumeModel.ExperienceModel, error) {
	collection := resumePath(resumeDTO.KindExperience)
	return Update[resumeModel.ExperienceModel](ctx, c, collection, collection+"/"+id, req)
}

func (c *Client) DeleteResumeEntry(ctx context.Context, kind resumeDTO.Kind, id string) error {
	collection := resumePath(kind)
	return c.Delete(ctx, collection, collection+"/"+id)
}
