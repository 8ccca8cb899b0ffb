package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int { return &v }

func TestStringifyID(t *testing.T) {
	oid := primitive.NewObjectID()

	doc := StringifyID(Document{"_id": oid, "name": "Halo"})
	assert.Equal(t, oid.Hex(), doc["_id"])
	assert.Equal(t, "Halo", doc["name"])

	doc = StringifyID(Document{"_id": int32(7)})
	assert.Equal(t, "7", doc["_id"])

	doc = StringifyID(Document{"name": "no id"})
	_, ok := doc["_id"]
	assert.False(t, ok)
}

func TestStringifyIDs(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	docs := StringifyIDs([]Document{{"_id": a}, {"_id": b}})

	assert.Equal(t, a.Hex(), docs[0]["_id"])
	assert.Equal(t, b.Hex(), docs[1]["_id"])
}

func TestQuizQuestion_Grade(t *testing.T) {
	q := QuizQuestion{Choices: []string{"A", "B", "C"}, AnswerIndex: intPtr(1)}

	tests := []struct {
		name    string
		answers []int
		score   int
		correct bool
	}{
		{"correct", []int{1}, ScoreCorrect, true},
		{"wrong", []int{2}, ScoreWrong, false},
		{"only first answer counts", []int{1, 0, 0}, ScoreCorrect, true},
		{"later correct answer ignored", []int{0, 1}, ScoreWrong, false},
		{"no answers", nil, ScoreWrong, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, correct := q.Grade(tt.answers)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.correct, correct)
		})
	}
}

func TestQuizQuestion_GradeWithoutAnswerIndex(t *testing.T) {
	score, correct := QuizQuestion{Choices: []string{"A"}}.Grade([]int{0})
	assert.Equal(t, ScoreWrong, score)
	assert.False(t, correct)
}

func TestNewQuizProgress(t *testing.T) {
	p := NewQuizProgress("", "q1", ScoreCorrect)
	require.NoError(t, p.Validate())

	assert.Equal(t, GuestUserID, p.UserID)
	assert.Equal(t, "q1", *p.QuizID)
	assert.Equal(t, ScoreCorrect, *p.Score)
	assert.True(t, p.Completed)
	assert.Nil(t, p.ModuleID)

	raw, err := bson.Marshal(p)
	require.NoError(t, err)

	var stored bson.M
	require.NoError(t, bson.Unmarshal(raw, &stored))
	assert.Len(t, stored, 4)
	assert.Equal(t, GuestUserID, stored["user_id"])
	assert.Equal(t, "q1", stored["quiz_id"])
	assert.Equal(t, true, stored["completed"])
	assert.EqualValues(t, ScoreCorrect, stored["score"])
}

func TestProgress_ValidateRequiresUser(t *testing.T) {
	assert.Error(t, (&Progress{}).Validate())
}

func TestAccessibility_KeepsUnknownKeys(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"darkMode":  true,
		"fontScale": 1.25,
		"language":  "id",
	})
	require.NoError(t, err)

	var a Accessibility
	require.NoError(t, bson.Unmarshal(raw, &a))
	assert.True(t, a.DarkMode)
	assert.Equal(t, 1.25, a.FontScale)
	assert.Equal(t, "id", a.Extra["language"])

	out, err := bson.Marshal(a)
	require.NoError(t, err)

	var back bson.M
	require.NoError(t, bson.Unmarshal(out, &back))
	assert.Equal(t, "id", back["language"])
}

func TestSchema(t *testing.T) {
	schema := Schema()
	require.Len(t, schema, 5)

	names := make([]string, 0, len(schema))
	for _, c := range schema {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"userprofile", "gesture", "module", "quizquestion", "progress"}, names)

	assert.Equal(t, []string{
		"name", "email", "avatar_url", "points", "level", "streak", "badges", "favorites", "accessibility",
	}, schema[0].Fields)
	assert.Equal(t, []string{
		"name", "category", "difficulty", "thumbnail", "video_url", "steps", "examples",
	}, schema[1].Fields)
	assert.Equal(t, []string{"title", "subtitle", "cover", "content"}, schema[2].Fields)
	assert.Equal(t, []string{"module_id", "prompt", "media_url", "choices", "answer_index"}, schema[3].Fields)
	assert.Equal(t, []string{"user_id", "module_id", "quiz_id", "completed", "score", "detail"}, schema[4].Fields)
}

func TestFieldNames_SkipsInline(t *testing.T) {
	assert.Equal(t, []string{"type", "value"}, FieldNames(&ContentBlock{}))
}
