// Package seed loads the initial site content from a YAML file and writes it
// through the content services so every record passes the usual validation.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/sitedeck/internal/service"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSeed []byte

// File 是种子文件的结构
type File struct {
	SocialLinks      []SocialLink      `yaml:"socialLinks"`
	Projects         []Project         `yaml:"projects"`
	PricingPlans     []PricingPlan     `yaml:"pricingPlans"`
	ParallaxSections []ParallaxSection `yaml:"parallaxSections"`
	Contacts         []Contact         `yaml:"contacts"`
}

type SocialLink struct {
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
	Icon     string `yaml:"icon"`
}

type Project struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Platform    string `yaml:"platform"`
	VideoURL    string `yaml:"videoUrl"`
}

type PricingPlan struct {
	Title           string   `yaml:"title"`
	Price           float64  `yaml:"price"`
	Currency        string   `yaml:"currency"`
	Period          string   `yaml:"period"`
	Features        []string `yaml:"features"`
	IsPopular       bool     `yaml:"isPopular"`
	BackgroundColor string   `yaml:"backgroundColor"`
}

type ParallaxSection struct {
	Title         string `yaml:"title"`
	Subtitle      string `yaml:"subtitle"`
	Description   string `yaml:"description"`
	BackgroundURL string `yaml:"backgroundUrl"`
	ImageURL      string `yaml:"imageUrl"`
	ButtonText    string `yaml:"buttonText"`
	ButtonURL     string `yaml:"buttonUrl"`
}

type Contact struct {
	ContactType string `yaml:"contactType"`
	Label       string `yaml:"label"`
	Content     string `yaml:"content"`
	IsMain      bool   `yaml:"isMain"`
}

// Services 是写入种子数据所需的内容服务
type Services struct {
	SocialLinks *service.SocialLinkService
	Projects    *service.ProjectService
	Pricing     *service.PricingService
	Parallax    *service.ParallaxService
	Contacts    *service.ContactService
}

// Report 统计每个集合写入与跳过的情况
type Report struct {
	Created map[string]int
	Skipped []string
}

// Load 解析 YAML 种子内容，未知字段视为错误
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &f, nil
}

// LoadFile 从磁盘读取种子文件
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// Default 返回内置的示例站点内容
func Default() *File {
	f, err := Load(bytes.NewReader(defaultSeed))
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return f
}

// Apply 将种子写入存储。已有内容的集合会被跳过，reset=true 时先清空再写入。
func Apply(ctx context.Context, f *File, svc Services, reset bool, log *zap.Logger) (Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	report := Report{Created: map[string]int{}}

	steps := []struct {
		collection string
		count      int
		existing   func() ([]string, bool)
		remove     func(id string) error
		create     func(i int) error
	}{
		{
			collection: service.CollectionSocialLinks,
			count:      len(f.SocialLinks),
			existing: func() ([]string, bool) {
				return listIDs(svc.SocialLinks.List(ctx), func(item service.SocialLink) string { return item.ID })
			},
			remove: func(id string) error { return svc.SocialLinks.Delete(ctx, id) },
			create: func(i int) error {
				item := f.SocialLinks[i]
				_, err := svc.SocialLinks.Create(ctx, service.SocialLinkInput{Platform: item.Platform, URL: item.URL, Icon: item.Icon})
				return err
			},
		},
		{
			collection: service.CollectionProjects,
			count:      len(f.Projects),
			existing: func() ([]string, bool) {
				return listIDs(svc.Projects.List(ctx), func(item service.Project) string { return item.ID })
			},
			remove: func(id string) error { return svc.Projects.Delete(ctx, id) },
			create: func(i int) error {
				item := f.Projects[i]
				_, err := svc.Projects.Create(ctx, service.ProjectInput{
					Title:       item.Title,
					Description: item.Description,
					Category:    item.Category,
					Platform:    item.Platform,
					VideoURL:    item.VideoURL,
				})
				return err
			},
		},
		{
			collection: service.CollectionPricingPlans,
			count:      len(f.PricingPlans),
			existing: func() ([]string, bool) {
				return listIDs(svc.Pricing.List(ctx), func(item service.PricingPlan) string { return item.ID })
			},
			remove: func(id string) error { return svc.Pricing.Delete(ctx, id) },
			create: func(i int) error {
				item := f.PricingPlans[i]
				_, err := svc.Pricing.Create(ctx, service.PricingPlanInput{
					Title:           item.Title,
					Price:           item.Price,
					Currency:        item.Currency,
					Period:          item.Period,
					Features:        item.Features,
					IsPopular:       item.IsPopular,
					BackgroundColor: item.BackgroundColor,
				})
				return err
			},
		},
		{
			collection: service.CollectionParallaxSections,
			count:      len(f.ParallaxSections),
			existing: func() ([]string, bool) {
				return listIDs(svc.Parallax.List(ctx), func(item service.ParallaxSection) string { return item.ID })
			},
			remove: func(id string) error { return svc.Parallax.Delete(ctx, id) },
			create: func(i int) error {
				item := f.ParallaxSections[i]
				_, err := svc.Parallax.Create(ctx, service.ParallaxSectionInput{
					Title:         item.Title,
					Subtitle:      item.Subtitle,
					Description:   item.Description,
					BackgroundURL: item.BackgroundURL,
					ImageURL:      item.ImageURL,
					ButtonText:    item.ButtonText,
					ButtonURL:     item.ButtonURL,
				})
				return err
			},
		},
		{
			collection: service.CollectionContacts,
			count:      len(f.Contacts),
			existing: func() ([]string, bool) {
				return listIDs(svc.Contacts.List(ctx), func(item service.ContactInfo) string { return item.ID })
			},
			remove: func(id string) error { return svc.Contacts.Delete(ctx, id) },
			create: func(i int) error {
				item := f.Contacts[i]
				_, err := svc.Contacts.Create(ctx, service.ContactInput{
					ContactType: item.ContactType,
					Label:       item.Label,
					Content:     item.Content,
					IsMain:      item.IsMain,
				})
				return err
			},
		},
	}

	for _, step := range steps {
		if step.count == 0 {
			continue
		}

		ids, stale := step.existing()
		if stale {
			return report, fmt.Errorf("read %s: store unavailable", step.collection)
		}
		if len(ids) > 0 && !reset {
			log.Info("collection not empty, skipping", zap.String("collection", step.collection), zap.Int("existing", len(ids)))
			report.Skipped = append(report.Skipped, step.collection)
			continue
		}
		for _, id := range ids {
			if err := step.remove(id); err != nil {
				return report, fmt.Errorf("reset %s: %w", step.collection, err)
			}
		}

		for i := 0; i < step.count; i++ {
			if err := step.create(i); err != nil {
				return report, fmt.Errorf("seed %s #%d: %w", step.collection, i+1, err)
			}
			report.Created[step.collection]++
		}
		log.Info("collection seeded", zap.String("collection", step.collection), zap.Int("created", step.count))
	}

	return report, nil
}

func listIDs[T any](res service.ListResult[T], id func(T) string) ([]string, bool) {
	ids := make([]string, 0, len(res.Items))
	for _, item := range res.Items {
		ids = append(ids, id(item))
	}
	return ids, res.Stale
}
