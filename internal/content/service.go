package content

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBlockNotFound = errors.New("content block not found")

	errPageRequired    = errors.New("page is required")
	errSectionRequired = errors.New("section is required")
)

type ContentService interface {
	Blocks(page string) []Block
	AddBlock(b Block) (*Block, error)
	UpdateBlock(id string, b Block) error
	DeleteBlock(id string) error

	Settings() Settings
	UpdateSettings(s Settings) error
}

type contentService struct {
	mu      sync.Mutex
	storage *Storage
	log     *logrus.Entry

	blocks   []Block
	settings Settings
}

func NewService(storage *Storage, log *logrus.Entry) ContentService {
	s := &contentService{
		storage: storage,
		log:     log,
	}

	var ok bool
	if s.blocks, ok = storage.LoadBlocks(); !ok {
		s.blocks = []Block{}
		storage.SaveBlocks(s.blocks)
	}
	if s.settings, ok = storage.LoadSettings(); !ok {
		s.settings = defaultSettings()
		storage.SaveSettings(s.settings)
	}

	return s
}

func (s *contentService) Blocks(page string) []Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page == "" {
		return append([]Block(nil), s.blocks...)
	}
	var out []Block
	for _, b := range s.blocks {
		if b.Page == page {
			out = append(out, b)
		}
	}
	return out
}

func (s *contentService) AddBlock(b Block) (*Block, error) {
	if strings.TrimSpace(b.Page) == "" {
		return nil, errPageRequired
	}
	if strings.TrimSpace(b.Section) == "" {
		return nil, errSectionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = uuid.NewString()
	s.blocks = append(s.blocks, b)
	s.storage.SaveBlocks(s.blocks)
	return &b, nil
}

func (s *contentService) UpdateBlock(id string, b Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.blocks {
		if s.blocks[i].ID == id {
			b.ID = id
			s.blocks[i] = b
			s.storage.SaveBlocks(s.blocks)
			return nil
		}
	}
	return ErrBlockNotFound
}

func (s *contentService) DeleteBlock(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.blocks {
		if s.blocks[i].ID == id {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			s.storage.SaveBlocks(s.blocks)
			return nil
		}
	}
	return ErrBlockNotFound
}

func (s *contentService) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *contentService) UpdateSettings(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	s.storage.SaveSettings(s.settings)
	return nil
}
