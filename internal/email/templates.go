package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"
)

// TemplateData feeds the decision templates.
type TemplateData struct {
	EmployeeName string
	ProjectTitle string
	ClientName   string
	DashboardURL string
	Year         int
}

// TemplateManager holds the parsed decision templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

const (
	TemplateApproval  = "application_approved"
	TemplateRejection = "application_rejected"
)

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	if err := tm.AddTemplate(TemplateApproval, approvalTemplate); err != nil {
		return nil, err
	}
	if err := tm.AddTemplate(TemplateRejection, rejectionTemplate); err != nil {
		return nil, err
	}
	return tm, nil
}

func (tm *TemplateManager) AddTemplate(name, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[name]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}

	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

const approvalTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: 'Segoe UI', Tahoma, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #647FBC 0%, #91ADC8 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0; font-size: 28px;">Congratulations!</h1>
    <p style="margin: 10px 0 0 0; font-size: 16px;">Your application has been approved</p>
  </div>
  <div style="background: #ffffff; padding: 30px; border: 1px solid #e0e0e0; border-top: none;">
    <p style="font-size: 16px;">Hi <strong>{{.EmployeeName}}</strong>,</p>
    <p>Great news! Your application for the following project has been <strong style="color: #28a745;">approved</strong> by the client.</p>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <p>Project: <strong>{{.ProjectTitle}}</strong></p>
      <p>Client: <strong>{{.ClientName}}</strong></p>
      <p>Status: <span style="color: #28a745; font-weight: 600;">Approved</span></p>
    </div>
    <p>You can now proceed with the project. The client will contact you shortly with further details and next steps.</p>
    <div style="text-align: center;">
      <a href="{{.DashboardURL}}/dashboard/projects" style="display: inline-block; padding: 12px 30px; background-color: #647FBC; color: white; text-decoration: none; border-radius: 8px; font-weight: 600;">View Project Details</a>
    </div>
  </div>
  <div style="background: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #666; border-radius: 0 0 10px 10px; border: 1px solid #e0e0e0; border-top: none;">
    <p>This is an automated message from our platform. Please do not reply to this email.</p>
    <p>&copy; {{.Year}} FreelanceHub. All rights reserved.</p>
  </div>
</body>
</html>`

const rejectionTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: 'Segoe UI', Tahoma, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #6c757d 0%, #adb5bd 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0; font-size: 28px;">Application Update</h1>
  </div>
  <div style="background: #ffffff; padding: 30px; border: 1px solid #e0e0e0; border-top: none;">
    <p style="font-size: 16px;">Hi <strong>{{.EmployeeName}}</strong>,</p>
    <p>Thank you for your interest in the <strong>{{.ProjectTitle}}</strong> project.</p>
    <p>After careful consideration, the client (<strong>{{.ClientName}}</strong>) has decided to move forward with other candidates for this particular project.</p>
    <p>We encourage you to keep exploring other opportunities on our platform.</p>
    <div style="text-align: center;">
      <a href="{{.DashboardURL}}/dashboard/available-projects" style="display: inline-block; padding: 12px 30px; background-color: #647FBC; color: white; text-decoration: none; border-radius: 8px; font-weight: 600;">Browse Available Projects</a>
    </div>
  </div>
  <div style="background: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #666; border-radius: 0 0 10px 10px; border: 1px solid #e0e0e0; border-top: none;">
    <p>This is an automated message from our platform. Please do not reply to this email.</p>
    <p>&copy; {{.Year}} FreelanceHub. All rights reserved.</p>
  </div>
</body>
</html>`
