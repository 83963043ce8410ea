package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/talentgate/jobportal/pkg/config"
	"github.com/talentgate/jobportal/pkg/logx"
	"github.com/talentgate/jobportal/portal/job"
	"github.com/talentgate/jobportal/portal/job/jobinfra"
	"github.com/talentgate/jobportal/portal/job/jobsrv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Seeds the jobs collection with a starter set of fresher postings.
// Safe to re-run: postings get fresh sequential IDs each time, so run it
// against an empty collection.
func main() {
	logx.SetLevel(logx.LevelInfo)

	if err := godotenv.Load(); err != nil {
		logx.Debugf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.ConnectionString()))
	if err != nil {
		logx.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logx.Warnf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		logx.Fatalf("Failed to ping MongoDB: %v", err)
	}

	repo := jobinfra.NewMongoJobRepository(client.Database(cfg.MongoDatabase))
	if err := repo.EnsureIndexes(ctx); err != nil {
		logx.Fatalf("Failed to create job indexes: %v", err)
	}
	service := jobsrv.NewJobService(repo)

	for _, req := range fresherJobs() {
		posting, err := service.Create(ctx, req)
		if err != nil {
			logx.Fatalf("Failed to seed job %q: %v", req.Title, err)
		}
		logx.Infof("Seeded job %d: %s at %s", posting.ID.Int64(), posting.Title, posting.Company)
	}

	logx.Info("Seeding complete")
}

func fresherJobs() []job.CreateJobRequest {
	return []job.CreateJobRequest{
		{
			Title:           "Software Developer Trainee",
			Company:         "TechNova Solutions",
			Location:        "Bangalore",
			Type:            "Full-time",
			Experience:      "0-1 years",
			ExperienceLevel: "Fresher",
			Salary:          "3.5 - 5 LPA",
			Description:     "Kickstart your career building web applications with a mentor-led training program.",
			Responsibilities: []string{
				"Develop and maintain web application features",
				"Write unit tests for new code",
				"Participate in code reviews and daily standups",
			},
			Requirements: []string{
				"B.E/B.Tech in Computer Science or related field",
				"Solid grasp of data structures and algorithms",
			},
			Skills:   []string{"Python", "JavaScript", "SQL", "Git"},
			Benefits: []string{"Health insurance", "Learning budget", "Hybrid work"},
		},
		{
			Title:           "Junior QA Engineer",
			Company:         "QualityFirst Labs",
			Location:        "Hyderabad",
			Type:            "Full-time",
			Experience:      "0-1 years",
			ExperienceLevel: "Fresher",
			Salary:          "3 - 4.5 LPA",
			Description:     "Join the QA team validating releases of a high-traffic SaaS product.",
			Responsibilities: []string{
				"Execute manual and automated test suites",
				"File detailed, reproducible bug reports",
				"Maintain regression test documentation",
			},
			Requirements: []string{
				"Any engineering degree, 2024 or 2025 passout",
				"Understanding of the software testing lifecycle",
			},
			Skills:   []string{"Selenium", "TestNG", "JIRA"},
			Benefits: []string{"Health insurance", "Free meals"},
		},
		{
			Title:           "Data Analyst Intern",
			Company:         "Insightly Analytics",
			Location:        "Remote",
			Type:            "Internship",
			Experience:      "0 years",
			ExperienceLevel: "Fresher",
			Salary:          "15,000/month stipend",
			Description:     "Six-month internship working with the analytics team on customer dashboards.",
			Responsibilities: []string{
				"Clean and transform raw datasets",
				"Build dashboards and weekly reports",
			},
			Requirements: []string{
				"Final-year students or recent graduates",
				"Comfort with spreadsheets and basic statistics",
			},
			Skills:   []string{"Excel", "SQL", "Power BI"},
			Benefits: []string{"Pre-placement offer for top performers", "Flexible hours"},
		},
		{
			Title:           "Frontend Developer (Fresher)",
			Company:         "PixelCraft Studio",
			Location:        "Pune",
			Type:            "Full-time",
			Experience:      "0-1 years",
			ExperienceLevel: "Fresher",
			Salary:          "4 - 6 LPA",
			Description:     "Build polished user interfaces for client projects across e-commerce and fintech.",
			Responsibilities: []string{
				"Implement responsive UI from design mockups",
				"Optimize page load performance",
				"Collaborate with designers and backend engineers",
			},
			Requirements: []string{
				"Portfolio or GitHub profile with frontend projects",
				"Strong fundamentals in HTML, CSS and JavaScript",
			},
			Skills:   []string{"React", "TypeScript", "CSS", "Tailwind"},
			Benefits: []string{"Health insurance", "Annual retreat", "Device allowance"},
		},
	}
}
