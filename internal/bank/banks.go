// Package bank holds the built-in question banks and the static
// branch/subject catalog. The banks are compiled-in reference data:
// immutable, loaded wholesale at session start.
package bank

import "github.com/SumukhPhulari10/Interactivequizplatform/internal/quiz"

var simple = []quiz.Question{
	{Prompt: "Capital of India?", Options: [4]string{"Mumbai", "New Delhi", "Kolkata", "Chennai"}, CorrectIndex: 1},
	{Prompt: "How many continents are there?", Options: [4]string{"5", "6", "7", "8"}, CorrectIndex: 2},
	{Prompt: "Largest planet?", Options: [4]string{"Earth", "Jupiter", "Saturn", "Mars"}, CorrectIndex: 1},
	{Prompt: "H2O is the chemical formula for?", Options: [4]string{"Hydrogen", "Oxygen", "Water", "Helium"}, CorrectIndex: 2},
	{Prompt: "National animal of India?", Options: [4]string{"Peacock", "Lion", "Tiger", "Elephant"}, CorrectIndex: 2},
	{Prompt: "Fastest land animal?", Options: [4]string{"Cheetah", "Horse", "Lion", "Gazelle"}, CorrectIndex: 0},
	{Prompt: "Primary colors include red, blue and?", Options: [4]string{"Green", "Yellow", "Black", "White"}, CorrectIndex: 1},
	{Prompt: "Smallest prime number?", Options: [4]string{"0", "1", "2", "3"}, CorrectIndex: 2},
	{Prompt: "Sun rises in the?", Options: [4]string{"North", "South", "East", "West"}, CorrectIndex: 2},
	{Prompt: "How many days in a leap year?", Options: [4]string{"365", "366", "367", "364"}, CorrectIndex: 1},
}

var medium = []quiz.Question{
	{Prompt: "Who wrote 'Romeo and Juliet'?", Options: [4]string{"Leo Tolstoy", "William Shakespeare", "Mark Twain", "Charles Dickens"}, CorrectIndex: 1},
	{Prompt: "The Great Barrier Reef is in which country?", Options: [4]string{"USA", "Australia", "South Africa", "Brazil"}, CorrectIndex: 1},
	{Prompt: "The SI unit of force is?", Options: [4]string{"Pascal", "Newton", "Joule", "Watt"}, CorrectIndex: 1},
	{Prompt: "Which gas is most abundant in Earth's atmosphere?", Options: [4]string{"Oxygen", "Nitrogen", "Carbon dioxide", "Argon"}, CorrectIndex: 1},
	{Prompt: "Which metal is liquid at room temperature?", Options: [4]string{"Mercury", "Sodium", "Aluminium", "Lithium"}, CorrectIndex: 0},
	{Prompt: "Which river is the longest in the world?", Options: [4]string{"Nile", "Amazon", "Yangtze", "Mississippi"}, CorrectIndex: 0},
	{Prompt: "Who painted the Mona Lisa?", Options: [4]string{"Vincent van Gogh", "Leonardo da Vinci", "Pablo Picasso", "Michelangelo"}, CorrectIndex: 1},
	{Prompt: "What is the square root of 144?", Options: [4]string{"10", "11", "12", "13"}, CorrectIndex: 2},
	{Prompt: "Which country hosted the 2016 Summer Olympics?", Options: [4]string{"China", "UK", "Brazil", "Japan"}, CorrectIndex: 2},
	{Prompt: "Which organ purifies blood in humans?", Options: [4]string{"Liver", "Lungs", "Heart", "Kidneys"}, CorrectIndex: 3},
}

var hard = []quiz.Question{
	{Prompt: "First woman to win a Nobel Prize?", Options: [4]string{"Marie Curie", "Rosalind Franklin", "Ada Lovelace", "Lise Meitner"}, CorrectIndex: 0},
	{Prompt: "Heaviest naturally occurring element by atomic weight?", Options: [4]string{"Uranium", "Plutonium", "Osmium", "Lead"}, CorrectIndex: 0},
	{Prompt: "Which planet has the fastest rotation?", Options: [4]string{"Jupiter", "Saturn", "Neptune", "Uranus"}, CorrectIndex: 0},
	{Prompt: "Year of the French Revolution?", Options: [4]string{"1776", "1789", "1812", "1848"}, CorrectIndex: 1},
	{Prompt: "DNA stands for?", Options: [4]string{"Deoxyribonucleic Acid", "Deoxyribose Nucleic Acid", "Dioxyribonucleic Acid", "Deoxynucleic Acid"}, CorrectIndex: 0},
	{Prompt: "Which mathematician proved Fermat's Last Theorem?", Options: [4]string{"Andrew Wiles", "Grigori Perelman", "Terence Tao", "Kurt Gödel"}, CorrectIndex: 0},
	{Prompt: "Capital of Kazakhstan?", Options: [4]string{"Astana", "Almaty", "Tashkent", "Bishkek"}, CorrectIndex: 0},
	{Prompt: "Author of 'The Origin of Species'?", Options: [4]string{"Gregor Mendel", "Charles Darwin", "Alfred Wallace", "Thomas Huxley"}, CorrectIndex: 1},
	{Prompt: "Avogadro's number is approximately?", Options: [4]string{"3.14×10^7", "6.02×10^23", "9.81 m/s^2", "1.60×10^-19 C"}, CorrectIndex: 1},
	{Prompt: "Which language family does Hungarian belong to?", Options: [4]string{"Indo-European", "Uralic", "Altaic", "Semitic"}, CorrectIndex: 1},
}

// Engineering fields mix: Mechanical, Civil, Electrical, CS, etc.
var engEasy = []quiz.Question{
	{Prompt: "In mechanics, unit of force?", Options: [4]string{"Joule", "Newton", "Pascal", "Watt"}, CorrectIndex: 1},
	{Prompt: "Concrete primarily gains strength due to?", Options: [4]string{"Hydration", "Oxidation", "Combustion", "Fermentation"}, CorrectIndex: 0},
	{Prompt: "Binary of decimal 5?", Options: [4]string{"100", "101", "110", "111"}, CorrectIndex: 1},
	{Prompt: "Ohm's law relates V, I and?", Options: [4]string{"Capacitance", "Resistance", "Inductance", "Power"}, CorrectIndex: 1},
	{Prompt: "Which CAD term means removing material?", Options: [4]string{"Extrude", "Chamfer", "Fillet", "Cut"}, CorrectIndex: 3},
	{Prompt: "Basic logic gate that outputs 1 only if all inputs are 1?", Options: [4]string{"OR", "XOR", "AND", "NAND"}, CorrectIndex: 2},
	{Prompt: "Beam that is fixed at one end?", Options: [4]string{"Simply supported", "Cantilever", "Overhanging", "Continuous"}, CorrectIndex: 1},
	{Prompt: "CPU stands for?", Options: [4]string{"Central Processing Unit", "Central Program Unit", "Compute Process Unit", "Control Program Unit"}, CorrectIndex: 0},
	{Prompt: "Unit of electric power?", Options: [4]string{"Joule", "Watt", "Volt", "Ampere"}, CorrectIndex: 1},
	{Prompt: "Material property: resistance to scratching?", Options: [4]string{"Ductility", "Hardness", "Toughness", "Elasticity"}, CorrectIndex: 1},
}

var engMedium = []quiz.Question{
	{Prompt: "Reynolds number helps predict?", Options: [4]string{"Flow regime", "Heat transfer area", "Pipe diameter", "Phase change"}, CorrectIndex: 0},
	{Prompt: "Which test measures concrete compressive strength?", Options: [4]string{"Slump test", "Cube test", "Rebound hammer", "Core cutter"}, CorrectIndex: 1},
	{Prompt: "Time complexity of binary search (sorted array)?", Options: [4]string{"O(n)", "O(log n)", "O(n log n)", "O(1)"}, CorrectIndex: 1},
	{Prompt: "Diode primarily allows current to flow in?", Options: [4]string{"Both directions", "Forward bias", "Reverse bias", "Alternately"}, CorrectIndex: 1},
	{Prompt: "Euler's formula in columns relates load to?", Options: [4]string{"Length", "Area", "Density", "Poisson's ratio"}, CorrectIndex: 0},
	{Prompt: "Normalized database reduces?", Options: [4]string{"Redundancy", "Indexes", "Queries", "Transactions"}, CorrectIndex: 0},
	{Prompt: "Shear force is max at?", Options: [4]string{"Free end", "Supports", "Mid-span", "Anywhere"}, CorrectIndex: 1},
	{Prompt: "Nyquist rate relates to?", Options: [4]string{"Sampling", "Modulation", "Amplification", "Rectification"}, CorrectIndex: 0},
	{Prompt: "PID controller 'I' term reduces?", Options: [4]string{"Overshoot", "Steady-state error", "Rise time", "Bandwidth"}, CorrectIndex: 1},
	{Prompt: "HTTP status for 'Not Found'?", Options: [4]string{"200", "301", "404", "500"}, CorrectIndex: 2},
}

var engHard = []quiz.Question{
	{Prompt: "For a simply supported beam with UDL, max bending moment at?", Options: [4]string{"Supports", "Quarter span", "Mid-span", "Near free end"}, CorrectIndex: 2},
	{Prompt: "Zener diode operates in?", Options: [4]string{"Forward conduction", "Breakdown region", "Cut-off", "Saturation"}, CorrectIndex: 1},
	{Prompt: "AVL tree rotation ensures?", Options: [4]string{"Heap property", "Balance factor bounds", "Topological order", "Shortest path"}, CorrectIndex: 1},
	{Prompt: "Bernoulli equation assumes?", Options: [4]string{"Compressible viscous flow", "Incompressible inviscid steady flow", "Unsteady flow", "Rotational flow"}, CorrectIndex: 1},
	{Prompt: "Slenderness ratio is?", Options: [4]string{"Area/Length", "Length/Radius of gyration", "Stress/Strain", "Load/Area"}, CorrectIndex: 1},
	{Prompt: "Maximum power transfer when load resistance equals?", Options: [4]string{"0", "Infinite", "Source resistance", "Twice source resistance"}, CorrectIndex: 2},
	{Prompt: "Page replacement algorithm that uses counter for recency?", Options: [4]string{"FIFO", "LRU", "LFU", "Clock"}, CorrectIndex: 1},
	{Prompt: "Fourier transform converts time domain to?", Options: [4]string{"Space", "Frequency", "Probability", "Impulse"}, CorrectIndex: 1},
	{Prompt: "Mohr's circle is used for?", Options: [4]string{"Thermal analysis", "Stress transformation", "Fluid statics", "Soil bearing"}, CorrectIndex: 1},
	{Prompt: "SVM uses which concept for classification?", Options: [4]string{"Decision tree", "Hyperplane margin maximization", "Entropy minimization", "Random walk"}, CorrectIndex: 1},
}

// Info describes a built-in bank for the selection screen.
type Info struct {
	ID            quiz.BankID `json:"id"`
	Title         string      `json:"title"`
	Category      string      `json:"category"`
	Difficulty    string      `json:"difficulty"`
	Description   string      `json:"description"`
	QuestionCount int         `json:"question_count"`
}

var builtin = map[quiz.BankID][]quiz.Question{
	quiz.BankSimple:    simple,
	quiz.BankMedium:    medium,
	quiz.BankHard:      hard,
	quiz.BankEngEasy:   engEasy,
	quiz.BankEngMedium: engMedium,
	quiz.BankEngHard:   engHard,
}

var catalog = []Info{
	{ID: quiz.BankSimple, Title: "Simple", Category: "General Knowledge", Difficulty: "Easy", Description: "Quick GK warm-up. 10 easy questions.", QuestionCount: len(simple)},
	{ID: quiz.BankMedium, Title: "Medium", Category: "General Knowledge", Difficulty: "Medium", Description: "Balanced GK set. 10 questions.", QuestionCount: len(medium)},
	{ID: quiz.BankHard, Title: "Hard", Category: "General Knowledge", Difficulty: "Hard", Description: "Challenging GK. 10 questions.", QuestionCount: len(hard)},
	{ID: quiz.BankEngEasy, Title: "Engineering Mix — Easy", Category: "Engineering Fields Mix", Difficulty: "Easy", Description: "Basics across Mechanical, Civil, Electrical, CS. 10 questions.", QuestionCount: len(engEasy)},
	{ID: quiz.BankEngMedium, Title: "Engineering Mix — Medium", Category: "Engineering Fields Mix", Difficulty: "Medium", Description: "Core concepts mixed set. 10 questions.", QuestionCount: len(engMedium)},
	{ID: quiz.BankEngHard, Title: "Engineering Mix — Hard", Category: "Engineering Fields Mix", Difficulty: "Hard", Description: "Advanced, exam-style problems. 10 questions.", QuestionCount: len(engHard)},
}

// Catalog returns the built-in bank descriptions in display order.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Builtin returns the questions for a built-in bank ID.
func Builtin(id quiz.BankID) ([]quiz.Question, bool) {
	qs, ok := builtin[id]
	if !ok {
		return nil, false
	}
	out := make([]quiz.Question, len(qs))
	copy(out, qs)
	return out, true
}
