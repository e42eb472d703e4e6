package catalog

import "jobsim-assessment-service/internal/domain"

// Builtin exposes the static bank for seeding tools.
func Builtin() []domain.Question {
	return builtinBank()
}

// builtinBank is the static question catalog. It backs the service whenever no
// Postgres catalog is configured and is the fallback for every degraded path.
func builtinBank() []domain.Question {
	return []domain.Question{
		// frontend
		{ID: 1, Text: "Which HTML tag creates a hyperlink?", Options: []string{"<link>", "<a>", "<href>", "<url>"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "frontend"},
		{ID: 2, Text: "Which CSS property controls text size?", Options: []string{"font-weight", "text-style", "font-size", "text-size"}, CorrectOption: 2, Difficulty: domain.DifficultyEasy, Category: "frontend"},
		{ID: 3, Text: "What does the virtual DOM in React optimize?", Options: []string{"Network requests", "Re-rendering cost", "Bundle size", "Memory allocation"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "frontend"},
		{ID: 4, Text: "Which hook memoizes a computed value between renders?", Options: []string{"useEffect", "useMemo", "useRef", "useState"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "frontend"},
		{ID: 5, Text: "What causes layout thrashing in the browser?", Options: []string{"Interleaved style reads and writes", "Too many event listeners", "Large cookies", "Deep component trees"}, CorrectOption: 0, Difficulty: domain.DifficultyHard, Category: "frontend"},
		{ID: 6, Text: "Which strategy avoids cumulative layout shift for images?", Options: []string{"Lazy loading everything", "Reserving space with width and height", "Using WebP", "Inlining base64"}, CorrectOption: 1, Difficulty: domain.DifficultyHard, Category: "frontend"},

		// backend
		{ID: 7, Text: "Which HTTP status code means Not Found?", Options: []string{"400", "401", "404", "500"}, CorrectOption: 2, Difficulty: domain.DifficultyEasy, Category: "backend"},
		{ID: 8, Text: "What does REST stand for?", Options: []string{"Remote Execution Standard Transfer", "Representational State Transfer", "Resource Exchange over Secure Transport", "Request-Response State Tracking"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "backend"},
		{ID: 9, Text: "Which header enables HTTP response caching by intermediaries?", Options: []string{"Cache-Control", "ETag-Policy", "X-Cache", "Vary-Cache"}, CorrectOption: 0, Difficulty: domain.DifficultyMedium, Category: "backend"},
		{ID: 10, Text: "What problem does idempotency solve in API design?", Options: []string{"Authentication replay", "Safe request retries", "Payload compression", "Schema evolution"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "backend"},
		{ID: 11, Text: "Which pattern decouples producers from consumers under bursty load?", Options: []string{"Circuit breaker", "Message queue", "Sidecar", "Saga"}, CorrectOption: 1, Difficulty: domain.DifficultyHard, Category: "backend"},
		{ID: 12, Text: "What does a distributed lock with an expiring lease protect against?", Options: []string{"Deadlocks from crashed holders", "Slow networks", "Clock drift", "Cache misses"}, CorrectOption: 0, Difficulty: domain.DifficultyHard, Category: "backend"},

		// programming
		{ID: 13, Text: "Which of these is a compiled language?", Options: []string{"Python", "Go", "JavaScript", "Ruby"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "programming"},
		{ID: 14, Text: "What is the result of 7 % 3?", Options: []string{"1", "2", "3", "0"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "programming"},
		{ID: 15, Text: "What does a pure function guarantee?", Options: []string{"No return value", "Same output for same input, no side effects", "Thread safety", "Constant time"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "programming"},
		{ID: 16, Text: "Which concept lets a function capture variables from its defining scope?", Options: []string{"Currying", "Closure", "Reflection", "Memoization"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "programming"},
		{ID: 17, Text: "What is a data race?", Options: []string{"Two threads reading shared state", "Unsynchronized concurrent access where at least one is a write", "A deadlock between two locks", "Starvation of a low-priority thread"}, CorrectOption: 1, Difficulty: domain.DifficultyHard, Category: "programming"},
		{ID: 18, Text: "Which garbage collection strategy has the shortest pause times?", Options: []string{"Stop-the-world mark and sweep", "Concurrent incremental collection", "Reference counting with cycles", "Full-heap compaction"}, CorrectOption: 1, Difficulty: domain.DifficultyHard, Category: "programming"},

		// algorithms
		{ID: 19, Text: "What is the time complexity of binary search?", Options: []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "algorithms"},
		{ID: 20, Text: "Which data structure is FIFO?", Options: []string{"Stack", "Queue", "Tree", "Heap"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "algorithms"},
		{ID: 21, Text: "Which sort is stable and O(n log n) worst case?", Options: []string{"Quicksort", "Merge sort", "Heapsort", "Selection sort"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "algorithms"},
		{ID: 22, Text: "What does a hash table degrade to under heavy collisions?", Options: []string{"A heap", "A linked-list scan", "A binary tree", "A queue"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "algorithms"},
		{ID: 23, Text: "Which algorithm finds shortest paths with negative edge weights?", Options: []string{"Dijkstra", "Bellman-Ford", "A*", "Prim"}, CorrectOption: 1, Difficulty: domain.DifficultyHard, Category: "algorithms"},
		{ID: 24, Text: "What is the amortized cost of appending to a dynamic array?", Options: []string{"O(n)", "O(log n)", "O(1)", "O(n log n)"}, CorrectOption: 2, Difficulty: domain.DifficultyHard, Category: "algorithms"},

		// databases
		{ID: 25, Text: "Which SQL statement retrieves rows?", Options: []string{"GET", "SELECT", "FETCH", "READ"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "databases"},
		{ID: 26, Text: "What does a primary key guarantee?", Options: []string{"Fast writes", "Uniqueness and identity", "Referential cascade", "Columnar storage"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "databases"},
		{ID: 27, Text: "What does an index speed up at the cost of?", Options: []string{"Reads at the cost of writes", "Writes at the cost of reads", "Joins at the cost of scans", "Nothing, it is free"}, CorrectOption: 0, Difficulty: domain.DifficultyMedium, Category: "databases"},
		{ID: 28, Text: "Which isolation level allows non-repeatable reads?", Options: []string{"Serializable", "Repeatable read", "Read committed", "Snapshot"}, CorrectOption: 2, Difficulty: domain.DifficultyMedium, Category: "databases"},
		{ID: 29, Text: "What trade-off does the CAP theorem describe during a partition?", Options: []string{"Consistency vs availability", "Latency vs throughput", "Durability vs cost", "Reads vs writes"}, CorrectOption: 0, Difficulty: domain.DifficultyHard, Category: "databases"},
		{ID: 30, Text: "Why can a covering index eliminate a table lookup?", Options: []string{"It caches the table in memory", "It contains every column the query needs", "It sorts the heap", "It compresses rows"}, CorrectOption: 1, Difficulty: domain.DifficultyHard, Category: "databases"},

		// devops
		{ID: 31, Text: "What does CI stand for?", Options: []string{"Code Inspection", "Continuous Integration", "Container Image", "Configuration Item"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "devops"},
		{ID: 32, Text: "Which tool builds container images from a Dockerfile?", Options: []string{"kubectl", "docker", "helm", "ansible"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "devops"},
		{ID: 33, Text: "What does a Kubernetes liveness probe trigger on failure?", Options: []string{"Pod eviction", "Container restart", "Node drain", "Service removal"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "devops"},
		{ID: 34, Text: "What is the point of infrastructure as code?", Options: []string{"Faster hardware", "Reproducible, reviewable environments", "Cheaper licenses", "Automatic scaling"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "devops"},
		{ID: 35, Text: "Which deployment strategy shifts traffic to a small share of new pods first?", Options: []string{"Recreate", "Canary", "Blue-green", "Rolling"}, CorrectOption: 1, Difficulty: domain.DifficultyHard, Category: "devops"},

		// cloud
		{ID: 36, Text: "What kind of service is S3-style object storage?", Options: []string{"Block storage", "Key-addressed blob storage", "A filesystem", "A message broker"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "cloud"},
		{ID: 37, Text: "What does autoscaling on a queue-depth metric protect against?", Options: []string{"Cold starts", "Backlog growth under load", "Cost spikes", "Zone failure"}, CorrectOption: 1, Difficulty: domain.DifficultyHard, Category: "cloud"},

		// data
		{ID: 38, Text: "Which format is columnar?", Options: []string{"CSV", "JSON", "Parquet", "XML"}, CorrectOption: 2, Difficulty: domain.DifficultyEasy, Category: "data"},
		{ID: 39, Text: "What is the median of 1, 3, 3, 6, 7, 8, 9?", Options: []string{"3", "6", "5.28", "7"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "data"},
		{ID: 40, Text: "What does overfitting mean?", Options: []string{"The model is too small", "The model memorizes training noise", "The data is unlabeled", "The loss is constant"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "data"},
		{ID: 41, Text: "Why is a windowed aggregation needed in stream processing?", Options: []string{"Streams are unbounded", "Windows compress data", "It avoids shuffles", "It guarantees ordering"}, CorrectOption: 0, Difficulty: domain.DifficultyHard, Category: "data"},

		// mobile
		{ID: 42, Text: "Which language is primary for iOS development?", Options: []string{"Kotlin", "Swift", "Dart", "C#"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "mobile"},
		{ID: 43, Text: "What should long-running mobile work avoid blocking?", Options: []string{"The network stack", "The main/UI thread", "Disk IO", "The GPU"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "mobile"},
		{ID: 44, Text: "Which approach keeps a mobile app usable offline?", Options: []string{"Bigger timeouts", "Local cache with background sync", "Smaller images", "WebSockets"}, CorrectOption: 1, Difficulty: domain.DifficultyHard, Category: "mobile"},

		// product
		{ID: 45, Text: "What is an MVP?", Options: []string{"Most Valuable Product", "Minimum Viable Product", "Maximum Value Proposition", "Minimal Verified Prototype"}, CorrectOption: 1, Difficulty: domain.DifficultyEasy, Category: "product"},
		{ID: 46, Text: "What does an A/B test compare?", Options: []string{"Two backends", "Two variants against a metric", "Two databases", "Two cohorts of employees"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "product"},
		{ID: 47, Text: "Why segment retention by acquisition cohort?", Options: []string{"Smaller charts", "It separates product changes from user-mix changes", "It boosts retention", "Regulators require it"}, CorrectOption: 1, Difficulty: domain.DifficultyHard, Category: "product"},

		// general
		{ID: 48, Text: "What does API stand for?", Options: []string{"Application Programming Interface", "Automated Process Integration", "Applied Protocol Implementation", "Abstract Program Interaction"}, CorrectOption: 0, Difficulty: domain.DifficultyEasy, Category: "general"},
		{ID: 49, Text: "Which practice catches regressions earliest?", Options: []string{"Manual QA", "Automated tests in CI", "Canary dashboards", "Postmortems"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "general"},
		{ID: 50, Text: "What is the main cost of premature optimization?", Options: []string{"Slower code", "Complexity without measured benefit", "More memory", "Longer builds"}, CorrectOption: 1, Difficulty: domain.DifficultyMedium, Category: "general"},
	}
}
