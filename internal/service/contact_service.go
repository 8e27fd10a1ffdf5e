package service

import (
	"context"
	"strings"

	"github.com/sitedeck/internal/store"
	"go.uber.org/zap"
)

// ContactType 是联系方式的类别
type ContactType string

const (
	ContactAddress ContactType = "address"
	ContactPhone   ContactType = "phone"
	ContactEmail   ContactType = "email"
)

// ParseContactType 解析联系方式类别，空值视为地址
func ParseContactType(value string) (ContactType, bool) {
	switch ContactType(strings.ToLower(strings.TrimSpace(value))) {
	case "", ContactAddress:
		return ContactAddress, true
	case ContactPhone:
		return ContactPhone, true
	case ContactEmail:
		return ContactEmail, true
	}
	return "", false
}

// Icon 返回类别对应的图标
func (t ContactType) Icon() string {
	switch t {
	case ContactPhone:
		return "lucide:phone"
	case ContactEmail:
		return "lucide:mail"
	default:
		return "lucide:map-pin"
	}
}

// Label 返回类别的展示名称
func (t ContactType) Label() string {
	switch t {
	case ContactPhone:
		return "Phone"
	case ContactEmail:
		return "Email"
	default:
		return "Address"
	}
}

// Href 返回联系内容的可点击链接，地址类没有链接
func (t ContactType) Href(content string) string {
	switch t {
	case ContactPhone:
		return "tel:" + content
	case ContactEmail:
		return "mailto:" + content
	default:
		return ""
	}
}

// ContactInfo 是联系我们页面的一条联系方式
// IsMain 仅作展示提示，允许多条同时为主要联系方式
type ContactInfo struct {
	ID          string      `json:"id"`
	ContactType ContactType `json:"contactType"`
	Label       string      `json:"label"`
	Content     string      `json:"content"`
	IsMain      bool        `json:"isMain"`

	Icon      string `json:"icon"`
	TypeLabel string `json:"typeLabel"`
	Href      string `json:"href,omitempty"`
}

// ContactInput 描述创建或更新联系方式时的字段
type ContactInput struct {
	ContactType string
	Label       string
	Content     string
	IsMain      bool
}

// ContactService 管理 contactUs 集合，写入后直接修补本地快照
type ContactService struct {
	*manager[ContactInfo]
}

// NewContactService 构造 ContactService
func NewContactService(st store.Store, log *zap.Logger) *ContactService {
	return &ContactService{manager: newManager(CollectionContacts, st, log, decodeContact, false)}
}

// Create 新建联系方式
func (s *ContactService) Create(ctx context.Context, input ContactInput) (ContactInfo, error) {
	fields, err := contactFields(input)
	if err != nil {
		return ContactInfo{}, err
	}
	return s.create(ctx, fields)
}

// Update 整体替换联系方式字段
func (s *ContactService) Update(ctx context.Context, id string, input ContactInput) (ContactInfo, error) {
	fields, err := contactFields(input)
	if err != nil {
		return ContactInfo{}, err
	}
	return s.update(ctx, id, fields)
}

func contactFields(input ContactInput) (store.Fields, error) {
	contactType, ok := ParseContactType(input.ContactType)
	if !ok {
		return nil, invalidInput("contactType must be address, phone or email")
	}

	label := strings.TrimSpace(input.Label)
	content := strings.TrimSpace(input.Content)
	if label == "" || content == "" {
		return nil, invalidInput("Please fill in all required fields")
	}

	return store.Fields{
		"contactType": string(contactType),
		"label":       label,
		"content":     content,
		"isMain":      input.IsMain,
	}, nil
}

func decodeContact(doc store.Document) ContactInfo {
	contactType, ok := ParseContactType(doc.Fields.String("contactType", ""))
	if !ok {
		contactType = ContactAddress
	}
	content := doc.Fields.String("content", "")

	return ContactInfo{
		ID:          doc.ID,
		ContactType: contactType,
		Label:       doc.Fields.String("label", ""),
		Content:     content,
		IsMain:      doc.Fields.Bool("isMain", false),
		Icon:        contactType.Icon(),
		TypeLabel:   contactType.Label(),
		Href:        contactType.Href(content),
	}
}
