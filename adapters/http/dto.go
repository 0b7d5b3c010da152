package http

import (
	"time"

	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
)

// Portfolio DTOs

type CreatePortfolioRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CustomHTML  string   `json:"customHtml"`
	ImageURL    string   `json:"imageUrl"`
	IsLogo      bool     `json:"isLogo"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
}

type UpdatePortfolioRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	CustomHTML  *string   `json:"customHtml"`
	ImageURL    *string   `json:"imageUrl"`
	IsLogo      *bool     `json:"isLogo"`
	Tags        *[]string `json:"tags"`
	Link        *string   `json:"link"`
}

type PortfolioItemDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CustomHTML  string    `json:"customHtml"`
	ImageURL    string    `json:"imageUrl"`
	IsLogo      bool      `json:"isLogo"`
	Tags        []string  `json:"tags"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToPortfolioItemDTO(i *portfolio.Item) PortfolioItemDTO {
	tags := i.Tags
	if tags == nil {
		tags = []string{}
	}
	return PortfolioItemDTO{
		ID:          i.ID.String(),
		Title:       i.Title,
		Description: i.Description,
		CustomHTML:  i.CustomHTML,
		ImageURL:    i.ImageURL,
		IsLogo:      i.IsLogo,
		Tags:        tags,
		Link:        i.Link,
		CreatedAt:   i.CreatedAt,
	}
}

// Education DTOs

type CreateEducationRequest struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Type        string `json:"type"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type UpdateEducationRequest struct {
	Institution *string `json:"institution"`
	Degree      *string `json:"degree"`
	Type        *string `json:"type"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description *string `json:"description"`
}

type EducationItemDTO struct {
	ID          string    `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Type        string    `json:"type"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToEducationItemDTO(i *education.Item) EducationItemDTO {
	return EducationItemDTO{
		ID:          i.ID.String(),
		Institution: i.Institution,
		Degree:      i.Degree,
		Type:        i.Type,
		StartDate:   i.StartDate,
		EndDate:     i.EndDate,
		Description: i.Description,
		CreatedAt:   i.CreatedAt,
	}
}

// Skill DTOs

type CreateSkillRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	Category string `json:"category"`
}

type UpdateSkillRequest struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	Value    *string `json:"value"`
	Category *string `json:"category"`
}

type SkillItemDTO struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Value     string         `json:"value"`
	Category  string         `json:"category"`
	Icon      *skill.IconRef `json:"icon,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ToSkillItemDTO pre-parses the icon class for Icon skills so clients render
// straight from (prefix, name) without re-parsing the class string.
func ToSkillItemDTO(i *skill.Item) SkillItemDTO {
	dto := SkillItemDTO{
		ID:        i.ID.String(),
		Name:      i.Name,
		Type:      i.Type,
		Value:     i.Value,
		Category:  i.Category,
		CreatedAt: i.CreatedAt,
	}
	if i.Type == skill.TypeIcon {
		ref := skill.ParseIconClass(i.Value)
		dto.Icon = &ref
	}
	return dto
}

// Profile DTOs

type SocialLinkDTO struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

type ProfileDTO struct {
	AboutText   string          `json:"aboutText"`
	ImageURL    string          `json:"imageUrl"`
	SocialLinks []SocialLinkDTO `json:"socialLinks"`
}

type UpsertProfileRequest struct {
	AboutText   string          `json:"aboutText"`
	ImageURL    string          `json:"imageUrl"`
	SocialLinks []SocialLinkDTO `json:"socialLinks"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	links := make([]SocialLinkDTO, len(p.SocialLinks))
	for i, l := range p.SocialLinks {
		links[i] = SocialLinkDTO(l)
	}
	return ProfileDTO{
		AboutText:   p.AboutText,
		ImageURL:    p.ImageURL,
		SocialLinks: links,
	}
}

func (req *UpsertProfileRequest) ToDomainLinks() []profile.SocialLink {
	links := make([]profile.SocialLink, len(req.SocialLinks))
	for i, l := range req.SocialLinks {
		links[i] = profile.SocialLink(l)
	}
	return links
}
