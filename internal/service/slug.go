package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/goombaio/namegenerator"
	"github.com/gosimple/slug"
)

// SlugGenerator derives the base file name shared by every image written
// during one post creation attempt.
type SlugGenerator interface {
	Generate(now time.Time) string
}

type nameSlugGenerator struct {
	mu    sync.Mutex
	names namegenerator.Generator
}

func NewSlugGenerator() SlugGenerator {
	return &nameSlugGenerator{
		names: namegenerator.NewNameGenerator(time.Now().UnixNano()),
	}
}

func (g *nameSlugGenerator) Generate(now time.Time) string {
	g.mu.Lock()
	name := g.names.Generate()
	g.mu.Unlock()

	return slug.Make(fmt.Sprintf("%s %d", name, now.UnixNano()))
}
