package bank

// Branch is an engineering branch offered on the platform.
type Branch struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Blurb string `json:"blurb"`
}

// YearKeys are the study-year groupings used by the subject catalog.
var YearKeys = []string{"1st", "2nd", "3rd", "BTech"}

var branches = []Branch{
	{ID: "electrical", Name: "Electrical", Blurb: "Circuits, signals, power systems, and electronics."},
	{ID: "mechanical", Name: "Mechanical", Blurb: "Mechanics, thermodynamics, manufacturing, and design."},
	{ID: "computer", Name: "Computer (CSE)", Blurb: "Data structures, algorithms, OS, networks, and DBMS."},
	{ID: "civil", Name: "Civil", Blurb: "Structures, geotech, transportation, and construction."},
	{ID: "chemical", Name: "Chemical", Blurb: "Process, thermodynamics, transport, and reactors."},
	{ID: "ai-ml", Name: "AI & ML", Blurb: "Math foundations, ML algorithms, deep learning."},
	{ID: "industrial", Name: "Industrial", Blurb: "Operations research, ergonomics, quality, and supply chain."},
	{ID: "materials", Name: "Materials", Blurb: "Structure-property, polymers, metals, and characterization."},
}

var subjects = map[string]map[string][]string{
	"electrical": {
		"1st":   {"Engineering Math I", "Physics", "Basic Electrical"},
		"2nd":   {"Circuits", "Signals & Systems", "Electromagnetics"},
		"3rd":   {"Power Systems", "Control Systems", "Analog & Digital"},
		"BTech": {"Power Electronics", "Communication", "Electrical Machines"},
	},
	"mechanical": {
		"1st":   {"Engineering Math I", "Graphics", "Workshop"},
		"2nd":   {"Mechanics of Materials", "Thermodynamics", "Fluid Mechanics"},
		"3rd":   {"Dynamics", "Manufacturing", "Heat Transfer"},
		"BTech": {"Design", "IC Engines", "Robotics Basics"},
	},
	"computer": {
		"1st":   {"Programming Basics", "Discrete Math", "Digital Logic"},
		"2nd":   {"Data Structures", "Computer Organization", "DBMS"},
		"3rd":   {"Algorithms", "Operating Systems", "Computer Networks"},
		"BTech": {"Distributed Systems", "AI Basics", "Cloud & DevOps"},
	},
	"civil": {
		"1st":   {"Engineering Math I", "Surveying Basics", "Materials"},
		"2nd":   {"Strength of Materials", "Fluid Mechanics", "Surveying"},
		"3rd":   {"Structural Analysis", "Geotechnical", "Transportation"},
		"BTech": {"Steel & RCC Design", "Water Resources", "Construction Mgmt"},
	},
	"chemical": {
		"1st":   {"Chemistry", "Engineering Math I", "Basics of Chem Engg"},
		"2nd":   {"Thermodynamics", "Fluid & Heat Transfer", "Mass Transfer"},
		"3rd":   {"Reaction Engineering", "Process Control", "Numerical Methods"},
		"BTech": {"Process Design", "Plant Safety", "Biochemical Engineering"},
	},
	"ai-ml": {
		"1st":   {"Math for AI", "Python Basics", "Probability"},
		"2nd":   {"Linear Algebra", "Statistics", "Data Wrangling"},
		"3rd":   {"Machine Learning", "Deep Learning", "NLP Basics"},
		"BTech": {"Computer Vision", "MLOps Intro", "Reinforcement Learning"},
	},
	"industrial": {
		"1st":   {"Engineering Math I", "Basics of IE", "Economics"},
		"2nd":   {"Work Study", "OR Basics", "Quality"},
		"3rd":   {"Supply Chain", "Simulation", "Ergonomics"},
		"BTech": {"Advanced OR", "Project Mgmt", "Lean Systems"},
	},
	"materials": {
		"1st":   {"Chemistry", "Physics", "Engineering Math I"},
		"2nd":   {"Structure of Materials", "Thermodynamics", "Diffusion"},
		"3rd":   {"Polymers", "Metallurgy", "Characterization"},
		"BTech": {"Composites", "Nanomaterials", "Failure Analysis"},
	},
}

// Branches returns the branch catalog in display order.
func Branches() []Branch {
	out := make([]Branch, len(branches))
	copy(out, branches)
	return out
}

// IsBranch reports whether id names a known branch.
func IsBranch(id string) bool {
	_, ok := subjects[id]
	return ok
}

// Subjects returns the year-to-subjects map for a branch.
func Subjects(branchID string) (map[string][]string, bool) {
	m, ok := subjects[branchID]
	if !ok {
		return nil, false
	}
	out := make(map[string][]string, len(m))
	for year, list := range m {
		cp := make([]string, len(list))
		copy(cp, list)
		out[year] = cp
	}
	return out, true
}
