package message

import (
	"atlas-warriors/kafka/producer"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

// Buffer accumulates messages per topic token until they are emitted together
type Buffer struct {
	buffer map[string][]kafka.Message
}

func NewBuffer() *Buffer {
	return &Buffer{
		buffer: make(map[string][]kafka.Message),
	}
}

func (b *Buffer) Put(t string, p model.Provider[[]kafka.Message]) error {
	ms, err := p()
	if err != nil {
		return err
	}
	b.buffer[t] = append(b.buffer[t], ms...)
	return nil
}

func (b *Buffer) GetAll() map[string][]kafka.Message {
	return b.buffer
}

// Emit runs the buffering function and then produces everything it put into
// the buffer. Nothing is produced if the function fails.
func Emit(p producer.Provider) func(f func(buf *Buffer) error) error {
	return func(f func(buf *Buffer) error) error {
		b := NewBuffer()
		err := f(b)
		if err != nil {
			return err
		}
		for t, ms := range b.GetAll() {
			err = p(t)(model.FixedProvider(ms))
			if err != nil {
				return err
			}
		}
		return nil
	}
}
