package messages

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nadafaclean/store-service/pkg/notify"
)

type MessageInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

type MessageUpdate struct {
	Subject *string `json:"subject,omitempty"`
	Body    *string `json:"body,omitempty"`
	Status  *string `json:"status,omitempty"`
	Starred *bool   `json:"starred,omitempty"`
	Reply   *string `json:"reply,omitempty"`
}

type MessagesService interface {
	Messages() []Message
	AddMessage(input MessageInput) (*Message, error)
	UpdateMessage(id string, upd MessageUpdate) error
	DeleteMessage(id string) error
	MarkAsRead(id string) error
	MarkAsReplied(id, reply string) error
	ToggleStar(id string) error
}

type messagesService struct {
	mu       sync.Mutex
	storage  *Storage
	log      *logrus.Entry
	notifier notify.Notifier

	messages []Message
}

func NewService(storage *Storage, log *logrus.Entry, notifier notify.Notifier) MessagesService {
	s := &messagesService{
		storage:  storage,
		log:      log,
		notifier: notifier,
	}

	var ok bool
	if s.messages, ok = storage.LoadMessages(); !ok {
		s.messages = []Message{}
		storage.SaveMessages(s.messages)
	}

	return s
}

func (s *messagesService) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func (s *messagesService) AddMessage(input MessageInput) (*Message, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errNameRequired
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, errEmailRequired
	}
	if strings.TrimSpace(input.Subject) == "" {
		return nil, errSubjectRequired
	}
	if strings.TrimSpace(input.Body) == "" {
		return nil, errBodyRequired
	}

	msg := Message{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Body:      input.Body,
		CreatedAt: time.Now(),
		Status:    StatusUnread,
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.storage.SaveMessages(s.messages)
	s.mu.Unlock()

	s.notifier.Notify("message.received", msg)
	return &msg, nil
}

func (s *messagesService) UpdateMessage(id string, upd MessageUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID != id {
			continue
		}
		m := &s.messages[i]
		if upd.Subject != nil {
			m.Subject = *upd.Subject
		}
		if upd.Body != nil {
			m.Body = *upd.Body
		}
		if upd.Status != nil {
			m.Status = *upd.Status
		}
		if upd.Starred != nil {
			m.Starred = *upd.Starred
		}
		if upd.Reply != nil {
			m.Reply = *upd.Reply
		}
		s.storage.SaveMessages(s.messages)
		return nil
	}
	return ErrMessageNotFound
}

func (s *messagesService) DeleteMessage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			s.storage.SaveMessages(s.messages)
			return nil
		}
	}
	return ErrMessageNotFound
}

func (s *messagesService) MarkAsRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Status = StatusRead
			s.storage.SaveMessages(s.messages)
			return nil
		}
	}
	return ErrMessageNotFound
}

func (s *messagesService) MarkAsReplied(id, reply string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Status = StatusReplied
			s.messages[i].Reply = reply
			s.storage.SaveMessages(s.messages)
			return nil
		}
	}
	return ErrMessageNotFound
}

func (s *messagesService) ToggleStar(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Starred = !s.messages[i].Starred
			s.storage.SaveMessages(s.messages)
			return nil
		}
	}
	return ErrMessageNotFound
}
