package blog

import "encoding/json"

// Paginate is a page of results as returned by the paging endpoints.
type Paginate[T any] struct {
	Next   bool `json:"next" yaml:"next"`
	Prev   bool `json:"prev" yaml:"prev"`
	Page   int  `json:"page" yaml:"page"`
	Size   int  `json:"size" yaml:"size"`
	Pages  int  `json:"pages" yaml:"pages"`
	Total  int  `json:"total" yaml:"total"`
	Result []T  `json:"result" yaml:"result"`
}

// ArticleStatus controls where an article is shown.
type ArticleStatus string

const (
	StatusDefault ArticleStatus = "default"
	StatusNoHome  ArticleStatus = "no_home"
	StatusHide    ArticleStatus = "hide"
)

// ArticleConfig holds per-article visibility settings.
type ArticleConfig struct {
	ID        int           `json:"id,omitempty" yaml:"id,omitempty"`
	ArticleID int           `json:"articleId,omitempty" yaml:"articleId,omitempty"`
	Status    ArticleStatus `json:"status,omitempty" yaml:"status,omitempty"`
	Password  string        `json:"password,omitempty" yaml:"password,omitempty"`
	IsEncrypt int           `json:"isEncrypt" yaml:"isEncrypt"`
	IsDel     int           `json:"isDel" yaml:"isDel"`
	IsDraft   int           `json:"isDraft" yaml:"isDraft"`
}

// ArticleRef links to a neighbouring article.
type ArticleRef struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Article is a blog post.
type Article struct {
	ID          int            `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Content     string         `json:"content" yaml:"content"`
	Cover       string         `json:"cover,omitempty" yaml:"cover,omitempty"`
	CateIDs     []int          `json:"cateIds,omitempty" yaml:"cateIds,omitempty"`
	CateList    []Category     `json:"cateList,omitempty" yaml:"cateList,omitempty"`
	TagIDs      []int          `json:"tagIds,omitempty" yaml:"tagIds,omitempty"`
	TagList     []Tag          `json:"tagList,omitempty" yaml:"tagList,omitempty"`
	View        int            `json:"view,omitempty" yaml:"view,omitempty"`
	Comment     int            `json:"comment,omitempty" yaml:"comment,omitempty"`
	Config      *ArticleConfig `json:"config,omitempty" yaml:"config,omitempty"`
	Prev        *ArticleRef    `json:"prev,omitempty" yaml:"prev,omitempty"`
	Next        *ArticleRef    `json:"next,omitempty" yaml:"next,omitempty"`
	CreateTime  string         `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// Category groups articles. Categories nest through Children.
type Category struct {
	ID       int        `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string     `json:"name" yaml:"name"`
	Mark     string     `json:"mark,omitempty" yaml:"mark,omitempty"`
	Icon     string     `json:"icon,omitempty" yaml:"icon,omitempty"`
	URL      string     `json:"url,omitempty" yaml:"url,omitempty"`
	Level    int        `json:"level" yaml:"level"`
	Order    int        `json:"order" yaml:"order"`
	Type     string     `json:"type,omitempty" yaml:"type,omitempty"`
	Children []Category `json:"children,omitempty" yaml:"children,omitempty"`
}

// Tag labels articles.
type Tag struct {
	ID   int    `json:"id,omitempty" yaml:"id,omitempty"`
	Name string `json:"name" yaml:"name"`
}

// ArticleCount is a per-category or per-tag article count.
type ArticleCount struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// User is a backend account.
type User struct {
	ID         int    `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Username   string `json:"username,omitempty" yaml:"username,omitempty"`
	Password   string `json:"password,omitempty" yaml:"-"`
	Email      string `json:"email,omitempty" yaml:"email,omitempty"`
	Avatar     string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Info       string `json:"info,omitempty" yaml:"info,omitempty"`
	RoleID     int    `json:"roleId,omitempty" yaml:"roleId,omitempty"`
	CreateTime string `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token string `json:"token" yaml:"token"`
	User  User   `json:"user" yaml:"user"`
}

// PasswordChange is the payload of UpdatePassword.
type PasswordChange struct {
	OldUsername string `json:"oldUsername"`
	NewUsername string `json:"newUsername"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Comment is a reader comment on an article. Replies nest through Children.
type Comment struct {
	ID           int       `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string    `json:"name" yaml:"name"`
	Avatar       string    `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Email        string    `json:"email,omitempty" yaml:"email,omitempty"`
	URL          string    `json:"url,omitempty" yaml:"url,omitempty"`
	Content      string    `json:"content" yaml:"content"`
	ArticleID    int       `json:"articleId,omitempty" yaml:"articleId,omitempty"`
	ArticleTitle string    `json:"articleTitle,omitempty" yaml:"articleTitle,omitempty"`
	CommentID    int       `json:"commentId,omitempty" yaml:"commentId,omitempty"`
	AuditStatus  int       `json:"auditStatus" yaml:"auditStatus"`
	Children     []Comment `json:"children,omitempty" yaml:"children,omitempty"`
	CreateTime   string    `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// WallCategory groups wall messages.
type WallCategory struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Mark  string `json:"mark,omitempty" yaml:"mark,omitempty"`
	Order int    `json:"order,omitempty" yaml:"order,omitempty"`
}

// Wall is a guestbook message.
type Wall struct {
	ID          int           `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string        `json:"name" yaml:"name"`
	CateID      int           `json:"cateId,omitempty" yaml:"cateId,omitempty"`
	Cate        *WallCategory `json:"cate,omitempty" yaml:"cate,omitempty"`
	Color       string        `json:"color,omitempty" yaml:"color,omitempty"`
	Content     string        `json:"content" yaml:"content"`
	Email       string        `json:"email,omitempty" yaml:"email,omitempty"`
	AuditStatus int           `json:"auditStatus" yaml:"auditStatus"`
	IsChoice    int           `json:"isChoice" yaml:"isChoice"`
	CreateTime  string        `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// Record is a short-form post.
type Record struct {
	ID         int      `json:"id,omitempty" yaml:"id,omitempty"`
	Content    string   `json:"content" yaml:"content"`
	Images     []string `json:"images,omitempty" yaml:"images,omitempty"`
	CreateTime string   `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// Footprint is a place the author has visited.
type Footprint struct {
	ID         int      `json:"id,omitempty" yaml:"id,omitempty"`
	Title      string   `json:"title" yaml:"title"`
	Address    string   `json:"address,omitempty" yaml:"address,omitempty"`
	Content    string   `json:"content,omitempty" yaml:"content,omitempty"`
	Position   string   `json:"position,omitempty" yaml:"position,omitempty"`
	Images     []string `json:"images,omitempty" yaml:"images,omitempty"`
	CreateTime string   `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// LinkType groups friend links.
type LinkType struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Order   int    `json:"order" yaml:"order"`
	IsAdmin int    `json:"isAdmin" yaml:"isAdmin"`
}

// Link is a friend link to another site.
type Link struct {
	ID               int       `json:"id,omitempty" yaml:"id,omitempty"`
	Title            string    `json:"title" yaml:"title"`
	Description      string    `json:"description,omitempty" yaml:"description,omitempty"`
	Email            string    `json:"email,omitempty" yaml:"email,omitempty"`
	Image            string    `json:"image,omitempty" yaml:"image,omitempty"`
	URL              string    `json:"url" yaml:"url"`
	RSS              string    `json:"rss,omitempty" yaml:"rss,omitempty"`
	Order            int       `json:"order" yaml:"order"`
	TypeID           int       `json:"typeId,omitempty" yaml:"typeId,omitempty"`
	Type             *LinkType `json:"type,omitempty" yaml:"type,omitempty"`
	AuditStatus      int       `json:"auditStatus" yaml:"auditStatus"`
	CreateTime       string    `json:"createTime,omitempty" yaml:"createTime,omitempty"`
	HCaptchaResponse string    `json:"h_captcha_response,omitempty" yaml:"-"`
}

// Swiper is a home page carousel slide.
type Swiper struct {
	ID          int    `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	Image       string `json:"image" yaml:"image"`
}

// File describes an uploaded file.
type File struct {
	Name       string `json:"name" yaml:"name"`
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
	Size       int64  `json:"size" yaml:"size"`
	URL        string `json:"url" yaml:"url"`
	CreateTime string `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// Dir is an upload directory.
type Dir struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// WebConfig is a named block of site configuration. Value is free-form JSON.
type WebConfig struct {
	ID    int             `json:"id" yaml:"id"`
	Name  string          `json:"name" yaml:"name"`
	Value json.RawMessage `json:"value" yaml:"-"`
	Notes string          `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// PageConfig is a named block of per-page configuration.
type PageConfig struct {
	ID    int             `json:"id" yaml:"id"`
	Name  string          `json:"name" yaml:"name"`
	Value json.RawMessage `json:"value" yaml:"-"`
	Notes string          `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Rss is an aggregated feed entry from a friend site.
type Rss struct {
	ID          int    `json:"id,omitempty" yaml:"id,omitempty"`
	Author      string `json:"author" yaml:"author"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url" yaml:"url"`
	CreateTime  string `json:"createTime,omitempty" yaml:"createTime,omitempty"`
}

// StatisticsType selects a statistics report.
type StatisticsType string

const (
	StatisticsBasic         StatisticsType = "basic"
	StatisticsOverview      StatisticsType = "overview"
	StatisticsNewVisitor    StatisticsType = "new-visitor"
	StatisticsBasicOverview StatisticsType = "basic-overview"
)

// StatisticsQuery selects a report and an optional date range.
// Dates are sent as given; DateLayout is the format the CLI produces.
type StatisticsQuery struct {
	Type      StatisticsType `json:"type"`
	StartDate string         `json:"startDate,omitempty"`
	EndDate   string         `json:"endDate,omitempty"`
}

// DateLayout formats statistics and filter dates.
const DateLayout = "2006-01-02"
