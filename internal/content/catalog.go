package content

// Lecture is a subdivision of a subject with its own question pool.
type Lecture struct {
	ID            string
	Title         string
	Duration      string
	QuestionCount int
	Topics        []string
}

// Subject is a top-level content category.
type Subject struct {
	ID          string
	Name        string
	Description string
	Lectures    []Lecture
}

// LectureByID returns the lecture with the given id, or nil.
func (s Subject) LectureByID(id string) *Lecture {
	for i := range s.Lectures {
		if s.Lectures[i].ID == id {
			return &s.Lectures[i]
		}
	}
	return nil
}

// Subjects returns the built-in subject catalog in display order.
func Subjects() []Subject {
	return catalog
}

// SubjectByID returns the subject with the given id, or nil.
func SubjectByID(id string) *Subject {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

var catalog = []Subject{
	{
		ID:          "ethicalhacking",
		Name:        "Ethical Hacking",
		Description: "Offensive security principles and practice",
		Lectures: []Lecture{
			{ID: "1", Title: "Introduction to Ethical Hacking", Duration: "60 min", QuestionCount: 37, Topics: []string{"Hacker types", "Attack phases", "CIA triad"}},
			{ID: "2", Title: "Footprinting and Reconnaissance", Duration: "65 min", QuestionCount: 48, Topics: []string{"Footprinting", "Google Dorking", "Shodan", "WHOIS", "DNS tools"}},
			{ID: "3", Title: "Network Scanning", Duration: "40 min", QuestionCount: 21, Topics: []string{"Host discovery", "Port scanning", "Banner grabbing", "Nessus"}},
		},
	},
	{
		ID:          "crypto",
		Name:        "Cryptography",
		Description: "Information security and cipher algorithms",
		Lectures: []Lecture{
			{ID: "1", Title: "Foundations of Cryptography", Duration: "40 min", QuestionCount: 25, Topics: []string{"History", "Core concepts", "Cipher types"}},
			{ID: "2", Title: "Symmetric Encryption", Duration: "50 min", QuestionCount: 35, Topics: []string{"DES", "AES", "Stream ciphers", "Block ciphers"}},
			{ID: "3", Title: "Asymmetric Encryption", Duration: "55 min", QuestionCount: 40, Topics: []string{"RSA", "ECC", "Diffie-Hellman"}},
			{ID: "4", Title: "Hash Functions", Duration: "45 min", QuestionCount: 30, Topics: []string{"SHA family", "MD5", "Message integrity"}},
			{ID: "5", Title: "Digital Signatures", Duration: "40 min", QuestionCount: 25, Topics: []string{"DSA", "ECDSA", "Authentication"}},
			{ID: "6", Title: "Key Management", Duration: "45 min", QuestionCount: 28, Topics: []string{"PKI", "Certificate authorities"}},
			{ID: "7", Title: "Security Protocols", Duration: "50 min", QuestionCount: 35, Topics: []string{"TLS/SSL", "IPSec", "Kerberos"}},
			{ID: "8", Title: "Modern Cryptography", Duration: "55 min", QuestionCount: 40, Topics: []string{"Post-quantum", "Homomorphic"}},
			{ID: "9", Title: "Cryptanalysis", Duration: "60 min", QuestionCount: 45, Topics: []string{"Attack methods", "Side channels"}},
			{ID: "10", Title: "Applied Cryptography", Duration: "40 min", QuestionCount: 25, Topics: []string{"Blockchain", "Digital currencies"}},
		},
	},
	{
		ID:          "networks",
		Name:        "Computer Networks",
		Description: "Communications and network protocols",
		Lectures: []Lecture{
			{ID: "1", Title: "Introduction to Networks", Duration: "45 min", QuestionCount: 25, Topics: []string{"Network types", "Topology", "Components"}},
			{ID: "2", Title: "The OSI Model", Duration: "50 min", QuestionCount: 35, Topics: []string{"Seven layers", "Encapsulation", "Protocol stack"}},
			{ID: "3", Title: "The Network Layer", Duration: "55 min", QuestionCount: 40, Topics: []string{"IP", "Routing", "ICMP", "IPv6"}},
			{ID: "4", Title: "The Transport Layer", Duration: "50 min", QuestionCount: 35, Topics: []string{"TCP", "UDP", "Port numbers"}},
			{ID: "5", Title: "Routing Algorithms", Duration: "60 min", QuestionCount: 45, Topics: []string{"Distance vector", "Link state", "OSPF"}},
			{ID: "6", Title: "Wireless Networks", Duration: "45 min", QuestionCount: 30, Topics: []string{"WiFi", "Bluetooth", "Cellular"}},
			{ID: "7", Title: "Network Security", Duration: "55 min", QuestionCount: 40, Topics: []string{"Firewalls", "VPN", "IDS/IPS"}},
			{ID: "8", Title: "Network Management", Duration: "40 min", QuestionCount: 25, Topics: []string{"SNMP", "Monitoring", "Performance"}},
			{ID: "9", Title: "Advanced Networking", Duration: "50 min", QuestionCount: 35, Topics: []string{"SDN", "Cloud networks", "5G"}},
		},
	},
	{
		ID:          "database",
		Name:        "Database Systems",
		Description: "Database design and administration",
		Lectures: []Lecture{
			{ID: "1", Title: "Introduction to Databases", Duration: "40 min", QuestionCount: 25, Topics: []string{"DBMS", "Data models", "Architecture"}},
			{ID: "2", Title: "The Relational Model", Duration: "50 min", QuestionCount: 35, Topics: []string{"Tables", "Keys", "Integrity"}},
			{ID: "3", Title: "SQL", Duration: "60 min", QuestionCount: 45, Topics: []string{"SELECT", "JOIN", "Functions", "Subqueries"}},
			{ID: "4", Title: "Database Design", Duration: "55 min", QuestionCount: 40, Topics: []string{"ER diagrams", "Normalization"}},
			{ID: "5", Title: "Transactions and Concurrency", Duration: "50 min", QuestionCount: 35, Topics: []string{"ACID", "Locking", "Deadlock"}},
			{ID: "6", Title: "Indexing", Duration: "45 min", QuestionCount: 30, Topics: []string{"B-trees", "Hash indexes"}},
			{ID: "7", Title: "Distributed Databases", Duration: "50 min", QuestionCount: 35, Topics: []string{"Distribution", "Replication"}},
			{ID: "8", Title: "Modern Databases", Duration: "45 min", QuestionCount: 30, Topics: []string{"NoSQL", "Big data", "Cloud"}},
		},
	},
	{
		ID:          "software",
		Name:        "Software Engineering",
		Description: "Software development methodologies",
		Lectures: []Lecture{
			{ID: "1", Title: "Introduction to Software Engineering", Duration: "45 min", QuestionCount: 25, Topics: []string{"Software crisis", "Principles"}},
			{ID: "2", Title: "Software Life Cycles", Duration: "55 min", QuestionCount: 40, Topics: []string{"Waterfall", "Agile", "Scrum"}},
			{ID: "3", Title: "Requirements Analysis", Duration: "50 min", QuestionCount: 35, Topics: []string{"Gathering", "Documentation", "UML"}},
			{ID: "4", Title: "Architectural Design", Duration: "60 min", QuestionCount: 45, Topics: []string{"Design patterns", "Architecture"}},
			{ID: "5", Title: "Software Testing", Duration: "55 min", QuestionCount: 40, Topics: []string{"Testing levels", "Strategies"}},
			{ID: "6", Title: "Project Management", Duration: "45 min", QuestionCount: 30, Topics: []string{"Planning", "Risk management"}},
			{ID: "7", Title: "Quality Assurance", Duration: "40 min", QuestionCount: 25, Topics: []string{"Quality models", "Reviews", "Standards"}},
		},
	},
	{
		ID:          "ai",
		Name:        "Artificial Intelligence",
		Description: "AI techniques and algorithms",
		Lectures: []Lecture{
			{ID: "1", Title: "Introduction to AI", Duration: "40 min", QuestionCount: 25, Topics: []string{"History", "Applications", "Types"}},
			{ID: "2", Title: "Search Algorithms", Duration: "55 min", QuestionCount: 40, Topics: []string{"BFS", "DFS", "A*", "Heuristics"}},
			{ID: "3", Title: "Logic and Inference", Duration: "50 min", QuestionCount: 35, Topics: []string{"Propositional logic", "Inference"}},
			{ID: "4", Title: "Machine Learning", Duration: "60 min", QuestionCount: 45, Topics: []string{"Supervised", "Unsupervised", "Reinforcement"}},
			{ID: "5", Title: "Neural Networks", Duration: "55 min", QuestionCount: 40, Topics: []string{"Perceptron", "Backpropagation", "Deep learning"}},
			{ID: "6", Title: "Natural Language Processing", Duration: "50 min", QuestionCount: 35, Topics: []string{"Tokenization", "Parsing", "Sentiment"}},
		},
	},
}
