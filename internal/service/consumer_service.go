package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"bookstore-be/internal/dto"
	"bookstore-be/internal/entity"
	"bookstore-be/internal/repository/specification"
	"bookstore-be/internal/repository/unitofwork"
	"bookstore-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// EmbedDocument renders the catalog row into the text the embedding model
// encodes. The field order and punctuation must stay stable: changing it
// silently shifts every stored vector relative to new ones.
func EmbedDocument(book *entity.Book) string {
	return fmt.Sprintf(
		"Title: %s. Author: %s. infantil: %s. Category: %s. Description: %s. Subjects: %s.",
		book.Title, book.Author, book.Infantil, book.Category, book.Description, book.Subjects,
	)
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedBookMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing book embedding for BookId: %s", payload.BookId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: payload.BookId})
	if err != nil {
		log.Printf("[ERROR] Failed to get book %s: %v", payload.BookId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if book == nil {
		log.Printf("[ERROR] Book not found: %s", payload.BookId)
		msg.Ack() // Book deleted? Ack.
		return
	}

	vector, err := cs.embeddingProvider.Generate(ctx, EmbedDocument(book))
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for book %s: %v", payload.BookId, err)
		msg.Nack()
		return
	}

	if err := uow.BookRepository().UpdateEmbedding(ctx, book.Id, vector); err != nil {
		log.Printf("[ERROR] Failed to store embedding for book %s: %v", payload.BookId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Book embedded: %s (%q)", book.Id, book.Title)
	msg.Ack()
}
