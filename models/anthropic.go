package models

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// RefreshAnthropic replaces the anthropic catalog entry with the live model
// listing from the API. Failures wrap ErrModelDiscovery and leave the
// existing catalog untouched.
func (m *Manager) RefreshAnthropic(ctx context.Context, client *anthropic.Client) error {
	iter := client.Models.ListAutoPaging(ctx, anthropic.ModelListParams{})

	var ids []string
	for iter.Next() {
		ids = append(ids, iter.Current().ID)
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: anthropic model listing: %v", ErrModelDiscovery, err)
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: anthropic returned an empty model listing", ErrModelDiscovery)
	}

	m.SetModels("anthropic", ids)
	return nil
}
