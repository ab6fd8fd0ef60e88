package embeddings

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider records requests and returns canned vectors.
type fakeProvider struct {
	calls   int
	inputs  []string
	vectors [][]float32
	err     error
}

func (f *fakeProvider) CreateEmbeddings(_ context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error) {
	f.calls++
	req := conv.Convert()
	if inputs, ok := req.Input.([]string); ok {
		f.inputs = append(f.inputs, inputs...)
	}
	if f.err != nil {
		return openai.EmbeddingResponse{}, f.err
	}
	resp := openai.EmbeddingResponse{}
	for _, v := range f.vectors {
		resp.Data = append(resp.Data, openai.Embedding{Embedding: v})
	}
	return resp, nil
}

func fullVector(fill float32) []float32 {
	v := make([]float32, Dimension)
	for i := range v {
		v[i] = fill
	}
	return v
}

func TestEmbed_BlankTextSkipsProvider(t *testing.T) {
	provider := &fakeProvider{vectors: [][]float32{fullVector(1)}}
	g := NewWithProvider(provider, "test-model")

	assert.Nil(t, g.Embed(context.Background(), ""))
	assert.Nil(t, g.Embed(context.Background(), "   \n\t"))
	assert.Zero(t, provider.calls)
}

func TestEmbed_DisabledGatewayReturnsNil(t *testing.T) {
	g := New(Config{})
	assert.False(t, g.Enabled())
	assert.Nil(t, g.Embed(context.Background(), "some text"))
}

func TestEmbed_ProviderErrorDegradesToNil(t *testing.T) {
	provider := &fakeProvider{err: errors.New("provider offline")}
	g := NewWithProvider(provider, "test-model")

	assert.Nil(t, g.Embed(context.Background(), "some text"))
	assert.Equal(t, 1, provider.calls)
}

func TestEmbed_ReturnsNormalizedVector(t *testing.T) {
	provider := &fakeProvider{vectors: [][]float32{fullVector(0.5)}}
	g := NewWithProvider(provider, "test-model")

	vec := g.Embed(context.Background(), "hello")
	require.Len(t, vec, Dimension)
	assert.Equal(t, float32(0.5), vec[0])
}

func TestEmbed_TruncatesOversizedInput(t *testing.T) {
	provider := &fakeProvider{vectors: [][]float32{fullVector(1)}}
	g := NewWithProvider(provider, "test-model")

	g.Embed(context.Background(), strings.Repeat("x", maxInputChars+500))
	require.Len(t, provider.inputs, 1)
	assert.Len(t, provider.inputs[0], maxInputChars)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		wantLen int
	}{
		{"exact dimension passes through", Dimension, Dimension},
		{"short vector is zero padded", 768, Dimension},
		{"long vector is truncated", Dimension + 10, Dimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]float32, tt.in)
			for i := range in {
				in[i] = 1
			}
			out := normalize(in)
			require.Len(t, out, tt.wantLen)
			if tt.in < Dimension {
				assert.Equal(t, float32(1), out[tt.in-1])
				assert.Equal(t, float32(0), out[tt.in])
			}
		})
	}
}

func TestEmbedBatch_PreservesOrderAndBlanks(t *testing.T) {
	provider := &fakeProvider{vectors: [][]float32{fullVector(1), fullVector(2)}}
	g := NewWithProvider(provider, "test-model")

	out := g.EmbedBatch(context.Background(), []string{"first", "", "third"})
	require.Len(t, out, 3)
	assert.Equal(t, float32(1), out[0][0])
	assert.Nil(t, out[1])
	assert.Equal(t, float32(2), out[2][0])

	// One provider round trip for the two non-blank inputs.
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, []string{"first", "third"}, provider.inputs)
}

func TestEmbedBatch_AllBlankSkipsProvider(t *testing.T) {
	provider := &fakeProvider{}
	g := NewWithProvider(provider, "test-model")

	out := g.EmbedBatch(context.Background(), []string{"", "  "})
	require.Len(t, out, 2)
	assert.Nil(t, out[0])
	assert.Nil(t, out[1])
	assert.Zero(t, provider.calls)
}

func TestEmbedBatch_ProviderErrorDegradesToNils(t *testing.T) {
	provider := &fakeProvider{err: errors.New("offline")}
	g := NewWithProvider(provider, "test-model")

	out := g.EmbedBatch(context.Background(), []string{"a", "b"})
	require.Len(t, out, 2)
	assert.Nil(t, out[0])
	assert.Nil(t, out[1])
}
