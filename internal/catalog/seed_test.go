package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-canvas/internal/catalog"
	"github.com/feral-file/ff-canvas/internal/domain"
	"github.com/feral-file/ff-canvas/internal/mocks"
)

func TestSeedLoader_Load(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr  string // Error message to assert, empty means no error expected
		validateFunc func(t *testing.T, seed *catalog.SeedData)
	}{
		{
			name: "successful load with valid JSON",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("traits.json").
					Return([]byte(`{
					"version": 1,
					"creator": "curator",
					"traits": [
						{"name": "texture", "base_rarity": 40, "cost": 1000},
						{"name": "glow", "base_rarity": 75, "cost": 2500}
					]
				}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			validateFunc: func(t *testing.T, seed *catalog.SeedData) {
				assert.Equal(t, 1, seed.Version)
				assert.Equal(t, "curator", seed.Creator)
				require.Len(t, seed.Traits, 2)
				assert.Equal(t, "glow", seed.Traits[1].Name)
				assert.Equal(t, uint32(75), seed.Traits[1].BaseRarity)
				assert.Equal(t, uint64(2500), seed.Traits[1].Cost)
			},
		},
		{
			name: "file read error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("traits.json").
					Return(nil, errors.New("permission denied"))
			},
			expectedErr: "failed to read seed file: permission denied",
		},
		{
			name: "invalid JSON",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("traits.json").
					Return([]byte(`{"traits": [`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					Return(errors.New("unexpected end of JSON input"))
			},
			expectedErr: "failed to parse seed JSON: unexpected end of JSON input",
		},
		{
			name: "duplicate trait names",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("traits.json").
					Return([]byte(`{"traits": [{"name": "glow"}, {"name": "glow"}]}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			expectedErr: `duplicate trait "glow" in seed file`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)
			tt.setupMocks(mockFS, mockJSON)

			loader := catalog.NewSeedLoader(mockFS, mockJSON)
			seed, err := loader.Load("traits.json")

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, seed)
				return
			}

			require.NoError(t, err)
			tt.validateFunc(t, seed)
		})
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	c := catalog.New(newTestStore(t))

	_, err := c.Define(ctx, domain.NewCall("alice", 1), "texture", 40, 1000)
	require.NoError(t, err)

	seed := &catalog.SeedData{
		Version: 1,
		Creator: "curator",
		Traits: []catalog.SeedTrait{
			{Name: "texture", BaseRarity: 10, Cost: 1},
			{Name: "glow", BaseRarity: 75, Cost: 2500},
		},
	}

	created, err := catalog.Seed(ctx, c.Define, domain.NewCall("operator", 5), seed)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	texture, err := c.Lookup(ctx, "texture")
	require.NoError(t, err)
	assert.Equal(t, uint32(40), texture.BaseRarity)

	glow, err := c.Lookup(ctx, "glow")
	require.NoError(t, err)
	require.NotNil(t, glow)
	assert.Equal(t, "curator", glow.Creator)
	assert.Equal(t, int64(5), glow.CreationTimestamp)

	t.Run("invalid entry aborts", func(t *testing.T) {
		_, err := catalog.Seed(ctx, c.Define, domain.NewCall("operator", 5), &catalog.SeedData{
			Traits: []catalog.SeedTrait{{Name: "loud", BaseRarity: 150}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTrait)
	})

	t.Run("nil seed", func(t *testing.T) {
		created, err := catalog.Seed(ctx, c.Define, domain.NewCall("operator", 5), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, created)
	})
}
