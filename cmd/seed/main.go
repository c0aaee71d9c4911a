package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsesurvey/internal/model"
	"pulsesurvey/internal/repository"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("pulsesurvey")
	surveyTypeRepo := repository.NewSurveyTypeRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)

	frequencyScale := model.RatingScale{
		Min:  0,
		Max:  6,
		Kind: model.ScaleKindFrequency,
		Labels: map[int]string{
			0: "Never",
			1: "A few times a year",
			2: "Once a month",
			3: "A few times a month",
			4: "Once a week",
			5: "A few times a week",
			6: "Every day",
		},
	}

	burnout := &model.SurveyType{
		Name:         "Burnout Assessment",
		Description:  "Exhaustion, cynicism and professional efficacy check-in",
		Category:     "wellbeing",
		Version:      1,
		DefaultScale: frequencyScale,
		Questions: []model.Question{
			{ID: "exhaustion_1", Factor: "Exhaustion", Order: 1,
				Template: "I feel emotionally drained by my work at {organization}."},
			{ID: "exhaustion_2", Factor: "Exhaustion", Order: 2,
				Template: "I feel used up at the end of the workday."},
			{ID: "cynicism_1", Factor: "Cynicism", Order: 3,
				Template: "I have become less interested in my work since I joined {organization}."},
			{ID: "cynicism_2", Factor: "Cynicism", Order: 4,
				Template: "I doubt the significance of my work."},
			{ID: "efficacy_1", Factor: "Efficacy", Order: 5,
				Template: "I can effectively solve the problems that arise in my work."},
			{ID: "efficacy_2", Factor: "Efficacy", Order: 6,
				Template: "I feel I am making an effective contribution to what {organization} does."},
		},
	}

	surveyTypeID, err := surveyTypeRepo.Create(ctx, burnout)
	if err != nil {
		log.Fatalf("Failed to seed survey type: %v", err)
	}
	fmt.Printf("Seeded survey type %s (%s)\n", burnout.Name, surveyTypeID)

	departments := []string{"Engineering", "Sales", "People"}
	locations := []string{"Berlin", "Zurich", "Remote"}

	for i := 0; i < 30; i++ {
		sub := &model.Submission{
			UserID:         fmt.Sprintf("user_%03d", i),
			OrganizationID: "org_demo",
			SurveyTypeID:   surveyTypeID,
			CompletedAt:    time.Now().Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
			Demographics: map[string]string{
				"department": departments[rand.Intn(len(departments))],
				"location":   locations[rand.Intn(len(locations))],
			},
		}
		for _, q := range burnout.Questions {
			sub.Answers = append(sub.Answers, model.Answer{
				QuestionID: q.ID,
				Rating:     rand.Intn(frequencyScale.Size()),
			})
		}
		if err := submissionRepo.Create(ctx, sub); err != nil {
			log.Fatalf("Failed to seed submission: %v", err)
		}
	}
	fmt.Println("Seeded 30 submissions for org_demo")
}
