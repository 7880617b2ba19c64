package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Console/internal/dto"
)

// HRProducer публикует события консоли об изменениях кадровых данных.
// Консоль работает и без Kafka: при ненастроенном продюсере вызовы
// просто не делаются (см. проверки в api).
type HRProducer struct {
	sp             sarama.SyncProducer
	topicEmployees string
	topicHistory   string
	source         string
	log            zerolog.Logger
}

type Config struct {
	TopicEmployees string
	TopicHistory   string
	Source         string
}

func NewHRProducer(sp sarama.SyncProducer, cfg Config, log zerolog.Logger) *HRProducer {
	return &HRProducer{
		sp:             sp,
		topicEmployees: cfg.TopicEmployees,
		topicHistory:   cfg.TopicHistory,
		source:         cfg.Source,
		log:            log.With().Str("component", "HRProducer").Logger(),
	}
}

func (p *HRProducer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}
	return p.sp.Close()
}

func (p *HRProducer) ProduceEmployeeChange(ctx context.Context, action string, e dto.Employee) error {
	env := Envelope[EmployeePayload]{
		Kind:           "employee",
		MessageID:      uuid.New(),
		EmployeeNumber: e.EmployeeNumber,
		Payload: EmployeePayload{
			EmployeeNumber: e.EmployeeNumber,
			Action:         action,
			FirstName:      e.FirstName,
			LastName:       e.LastName,
			Email:          e.Email,
			JobCode:        e.JobCode,
			DepartmentCode: e.DepartmentCode,
			Salary:         e.Salary,
		},
		Timestamp: time.Now().UTC(),
		Source:    p.source,
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	return p.send(ctx, p.topicEmployees, strconv.FormatInt(e.EmployeeNumber, 10), body, map[string]string{
		"event-kind":   "employee",
		"action":       action,
		"source":       p.source,
		"content-type": "application/json",
	})
}

func (p *HRProducer) ProduceHistoryReplaced(ctx context.Context, employeeNumber int64, entries []dto.JobHistoryEntry) error {
	payload := HistoryPayload{EmployeeNumber: employeeNumber}
	for _, e := range entries {
		payload.Entries = append(payload.Entries, HistoryEntry{
			JobCode:        e.JobCode,
			DepartmentCode: e.DepartmentCode,
			EffectiveDate:  e.EffectiveDate,
			Salary:         e.Salary,
		})
	}

	env := Envelope[HistoryPayload]{
		Kind:           "history",
		MessageID:      uuid.New(),
		EmployeeNumber: employeeNumber,
		Payload:        payload,
		Timestamp:      time.Now().UTC(),
		Source:         p.source,
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	return p.send(ctx, p.topicHistory, strconv.FormatInt(employeeNumber, 10), body, map[string]string{
		"event-kind": "history",
		"source":     p.source,
	})
}

func (p *HRProducer) send(_ context.Context, topic, key string, value []byte, headers map[string]string) error {
	if p == nil || p.sp == nil {
		return errors.New("sync producer is not initialized")
	}

	var hs []sarama.RecordHeader
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: hs,
	}

	part, off, err := p.sp.SendMessage(msg)
	if err != nil {
		p.log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Int("bytes", len(value)).
			Msg("failed to send kafka message")
		return fmt.Errorf("send kafka message: %w", err)
	}

	p.log.Info().
		Str("topic", topic).
		Str("key", key).
		Int32("partition", part).
		Int64("offset", off).
		Int("bytes", len(value)).
		Msg("kafka message sent")
	return nil
}
