package ai

import (
	"context"
	"testing"
)

func TestStubClient(t *testing.T) {
	c := NewStubClient(Attachment{Type: "image/png", URL: "files/x/a.png"})
	msgs, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}}, GenerationOptions{Quality: QualityHD})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if c.Calls != 1 || c.Messages[0].Content != "hi" || c.Options.Quality != QualityHD {
		t.Errorf("stub recorded calls=%d messages=%v options=%+v", c.Calls, c.Messages, c.Options)
	}
	if len(msgs) != 1 || len(msgs[0].Attachments()) != 1 {
		t.Fatalf("reply = %+v", msgs)
	}
}
