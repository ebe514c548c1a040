package service

import "github.com/ZmnRobin/pc-builder/internal/domain"

// BuildTemplate is a pre-made starting point for common use cases.
type BuildTemplate struct {
	Name                string         `json:"name"`
	Description         string         `json:"description"`
	BudgetRange         [2]int         `json:"budget_range"`
	Purpose             domain.Purpose `json:"purpose"`
	ExpectedPerformance string         `json:"expected_performance"`
}

// Templates returns the static template table.
func (s *Service) Templates() []BuildTemplate {
	return buildTemplates
}

var buildTemplates = []BuildTemplate{
	{
		Name:                "Budget Gaming PC",
		Description:         "Good 1080p gaming performance for tight budgets",
		BudgetRange:         [2]int{35000, 50000},
		Purpose:             domain.PurposeGamingBudget,
		ExpectedPerformance: "1080p Medium-High settings, 60+ FPS",
	},
	{
		Name:                "Mid-Range Gaming PC",
		Description:         "Excellent 1080p, good 1440p gaming",
		BudgetRange:         [2]int{60000, 90000},
		Purpose:             domain.PurposeGamingMid,
		ExpectedPerformance: "1080p Ultra, 1440p High settings, 60+ FPS",
	},
	{
		Name:                "High-End Gaming PC",
		Description:         "4K gaming and future-proof performance",
		BudgetRange:         [2]int{120000, 200000},
		Purpose:             domain.PurposeGamingHighEnd,
		ExpectedPerformance: "1440p Ultra, 4K High settings, 60+ FPS",
	},
	{
		Name:                "Office PC",
		Description:         "Reliable performance for office work",
		BudgetRange:         [2]int{25000, 40000},
		Purpose:             domain.PurposeOffice,
		ExpectedPerformance: "Smooth office applications, web browsing",
	},
	{
		Name:                "Productivity Workstation",
		Description:         "Heavy multitasking, compilation, virtual machines",
		BudgetRange:         [2]int{40000, 80000},
		Purpose:             domain.PurposeProductivity,
		ExpectedPerformance: "Large projects and many-core workloads",
	},
	{
		Name:                "Content Creation PC",
		Description:         "Video editing, 3D rendering, streaming",
		BudgetRange:         [2]int{80000, 150000},
		Purpose:             domain.PurposeContentCreation,
		ExpectedPerformance: "4K video editing, 3D rendering, live streaming",
	},
}
