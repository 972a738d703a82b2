package testutils

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/florentbo/umpire_manager/model"
	"github.com/itbasis/go-clock"
)

type TestController struct {
	Clock         *clock.Mock
	fakeSchedule  *FakeScheduleServer
	fakeDirectory *FakeDirectoryServer
	rubricDir     string
}

func (c *TestController) Close() {
	c.fakeSchedule.Close()
	c.fakeDirectory.Close()
	os.RemoveAll(c.rubricDir)
}

func (c *TestController) ScheduleURL() string {
	return c.fakeSchedule.URL()
}

func (c *TestController) DirectoryURL() string {
	return c.fakeDirectory.URL()
}

// RubricDir holds one rubric file per assessment level, in the layout that
// rubric.NewFileProvider expects.
func (c *TestController) RubricDir() string {
	return c.rubricDir
}

func NewTestController() *TestController {
	rubricDir, err := os.MkdirTemp("", "rubrics")
	if err != nil {
		log.Fatalf("error creating rubric dir: %v", err)
	}
	for _, level := range []string{"regional", "national"} {
		writeRubric(rubricDir, TestRubric(level))
	}

	return &TestController{
		Clock:         clock.NewMock(),
		fakeSchedule:  NewFakeScheduleServer(),
		fakeDirectory: NewFakeDirectoryServer(),
		rubricDir:     rubricDir,
	}
}

// TestRubric is a small two-topic rubric with a max score of 12.
func TestRubric(level string) *model.AssessmentConfig {
	return &model.AssessmentConfig{
		Level: level,
		Topics: []model.Topic{
			{
				Name:           "general",
				CollectRemarks: true,
				Questions: []model.Question{
					{
						ID:   "general.arrival",
						Text: "Arrived on time and prepared?",
						Options: []model.AnswerOption{
							{Value: "ok", Points: 2},
							{Value: "not ok", Points: -1},
						},
					},
				},
			},
			{
				Name: "positioning",
				Questions: []model.Question{
					{
						ID:   "positioning.circle",
						Text: "Positioning around the circle",
						Options: []model.AnswerOption{
							{Value: "excellent", Points: 10},
							{Value: "ok", Points: 6},
						},
					},
				},
			},
		},
	}
}

// FullUmpireInput answers every question in TestRubric for a perfect score.
func FullUmpireInput(umpireID string) model.UmpireInput {
	return model.UmpireInput{
		UmpireID: umpireID,
		Topics: []model.TopicInput{
			{
				Name: "general",
				Answers: []model.AnswerInput{
					{QuestionID: "general.arrival", SelectedValue: "ok"},
				},
			},
			{
				Name: "positioning",
				Answers: []model.AnswerInput{
					{QuestionID: "positioning.circle", SelectedValue: "excellent"},
				},
			},
		},
		Conclusion: "keeps the game under control",
	}
}

func writeRubric(dir string, cfg *model.AssessmentConfig) {
	data, err := json.Marshal(cfg)
	if err != nil {
		log.Fatalf("error marshalling rubric %s: %v", cfg.Level, err)
	}
	if err := os.WriteFile(filepath.Join(dir, cfg.Level+".json"), data, 0o644); err != nil {
		log.Fatalf("error writing rubric %s: %v", cfg.Level, err)
	}
}
