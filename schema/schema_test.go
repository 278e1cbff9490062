package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/assocgen/errors"
	"github.com/teranos/assocgen/schema"
)

const blogSchema = `
entities:
  - name: User
    attributes:
      - name: id
        type: number
      - name: name
        type: string
  - name: Post
    attributes:
      - name: id
        type: number
      - name: title
        type: string
      - name: status
        type: enum
        values: [draft, published]
        optional: true
associations:
  - kind: belongs_to
    source: Post
    target: User
    alias: author
  - kind: has_many
    source: User
    target: Post
    alias: posts
`

func TestParse_Blog(t *testing.T) {
	s, err := schema.Parse([]byte(blogSchema))
	require.NoError(t, err)

	require.Len(t, s.Entities, 2)
	assert.Equal(t, "User", s.Entities[0].Name)
	assert.Equal(t, "Post", s.Entities[1].Name)

	post := s.Entity("Post")
	require.NotNil(t, post)
	require.Len(t, post.Attributes, 3)

	status := post.Attribute("status")
	require.NotNil(t, status)
	assert.Equal(t, schema.TypeEnum, status.Type)
	assert.True(t, status.Optional)
	assert.Equal(t, []string{"draft", "published"}, status.Values)

	require.Len(t, s.Associations, 2)
	assert.Equal(t, schema.BelongsTo, s.Associations[0].Kind)
	assert.Equal(t, "author", s.Associations[0].EffectiveAlias())
}

func TestParse_UnknownField(t *testing.T) {
	_, err := schema.Parse([]byte("entities:\n  - name: User\n    columns: []\n"))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
}

func TestEffectiveAlias_DefaultsToTarget(t *testing.T) {
	a := schema.Association{Kind: schema.BelongsTo, Source: "Post", Target: "User"}
	assert.Equal(t, "User", a.EffectiveAlias())

	a.Alias = "author"
	assert.Equal(t, "author", a.EffectiveAlias())
}

func TestValidate_DanglingTarget(t *testing.T) {
	_, err := schema.Parse([]byte(`
entities:
  - name: Post
    attributes:
      - name: id
        type: number
associations:
  - kind: belongs_to
    source: Post
    target: User
`))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
	assert.Contains(t, err.Error(), `"User"`)
}

func TestValidate_DanglingSource(t *testing.T) {
	_, err := schema.Parse([]byte(`
entities:
  - name: User
    attributes:
      - name: id
        type: number
associations:
  - kind: has_many
    source: Account
    target: User
`))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
	assert.Contains(t, err.Error(), `"Account"`)
}

func TestValidate_BelongsToManyRequiresThrough(t *testing.T) {
	_, err := schema.Parse([]byte(`
entities:
  - name: User
    attributes:
      - name: id
        type: number
  - name: Post
    attributes:
      - name: id
        type: number
associations:
  - kind: belongs_to_many
    source: Post
    target: User
    alias: upvoters
`))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
	assert.Contains(t, err.Error(), "join-table")
}

func TestValidate_ThroughOnlyForBelongsToMany(t *testing.T) {
	_, err := schema.Parse([]byte(`
entities:
  - name: User
    attributes:
      - name: id
        type: number
  - name: Post
    attributes:
      - name: id
        type: number
associations:
  - kind: has_many
    source: User
    target: Post
    through: UserPosts
`))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
}

func TestValidate_AliasCollision(t *testing.T) {
	_, err := schema.Parse([]byte(`
entities:
  - name: User
    attributes:
      - name: id
        type: number
  - name: Post
    attributes:
      - name: id
        type: number
associations:
  - kind: has_many
    source: User
    target: Post
    alias: posts
  - kind: belongs_to_many
    source: User
    target: Post
    alias: post
    through: UserPosts
`))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
	assert.Contains(t, err.Error(), "alias collision")
	assert.Contains(t, err.Error(), `"User"`)
}

func TestValidate_DefaultAliasCollision(t *testing.T) {
	// Two unaliased associations to the same target collide on the
	// derived default alias.
	_, err := schema.Parse([]byte(`
entities:
  - name: User
    attributes:
      - name: id
        type: number
  - name: Post
    attributes:
      - name: id
        type: number
associations:
  - kind: has_many
    source: User
    target: Post
  - kind: has_one
    source: User
    target: Post
`))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
	assert.Contains(t, err.Error(), "alias collision")
}

func TestValidate_UnknownKind(t *testing.T) {
	_, err := schema.Parse([]byte(`
entities:
  - name: User
    attributes:
      - name: id
        type: number
associations:
  - kind: has_lots
    source: User
    target: User
`))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
	assert.Contains(t, err.Error(), `"has_lots"`)
}

func TestValidate_EnumWithoutValues(t *testing.T) {
	_, err := schema.Parse([]byte(`
entities:
  - name: User
    attributes:
      - name: role
        type: enum
`))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
	assert.Contains(t, err.Error(), `"role"`)
}

func TestValidate_DuplicateAttribute(t *testing.T) {
	_, err := schema.Parse([]byte(`
entities:
  - name: User
    attributes:
      - name: id
        type: number
      - name: id
        type: string
`))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
	assert.Contains(t, err.Error(), "declared twice")
}

func TestResolve_OwnedAndInverse(t *testing.T) {
	s, err := schema.Parse([]byte(blogSchema))
	require.NoError(t, err)

	res, err := s.Resolve()
	require.NoError(t, err)

	user := res.Entity("User")
	require.NotNil(t, user)
	require.Len(t, user.Owned, 1)
	assert.Equal(t, schema.HasMany, user.Owned[0].Kind)
	require.Len(t, user.Inverse, 1)
	assert.Equal(t, schema.BelongsTo, user.Inverse[0].Kind)

	post := res.Entity("Post")
	require.NotNil(t, post)
	require.Len(t, post.Owned, 1)
	assert.Equal(t, schema.BelongsTo, post.Owned[0].Kind)
	require.Len(t, post.Inverse, 1)
	assert.Equal(t, schema.HasMany, post.Inverse[0].Kind)
}

func TestResolve_PreservesDeclarationOrder(t *testing.T) {
	s, err := schema.Parse([]byte(blogSchema))
	require.NoError(t, err)

	res, err := s.Resolve()
	require.NoError(t, err)

	require.Len(t, res.Entities, 2)
	assert.Equal(t, "User", res.Entities[0].Name)
	assert.Equal(t, "Post", res.Entities[1].Name)
}

func TestOverrides_Lookup(t *testing.T) {
	ov := schema.Overrides{
		"Post": {"upvoters": {Singular: "upvoter", Plural: "upvoters"}},
	}

	forms, ok := ov.Lookup("Post", "upvoters")
	require.True(t, ok)
	assert.Equal(t, "upvoter", forms.Singular)

	_, ok = ov.Lookup("Post", "author")
	assert.False(t, ok)

	_, ok = schema.Overrides(nil).Lookup("Post", "upvoters")
	assert.False(t, ok)
}
