package analytics

// DefaultStopWords are the function words dropped from word-frequency
// analysis.
var DefaultStopWords = []string{
	"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"by", "from", "up", "about", "into", "through", "during", "before",
	"after", "above", "below", "between", "among", "throughout", "despite",
	"towards", "upon", "concerning", "a", "an", "as", "are", "was", "were",
	"been", "be", "have", "has", "had", "do", "does", "did", "will", "would",
	"should", "could", "can", "cannot", "may", "might", "must", "shall",
	"is", "am", "it", "this", "that", "these", "those", "i", "you", "he",
	"she", "we", "they", "me", "him", "her", "us", "them", "my", "your",
	"his", "its", "our", "their", "mine", "yours", "hers", "ours",
	"theirs", "myself", "yourself", "himself", "herself", "itself",
	"ourselves", "yourselves", "themselves", "what", "which", "who", "whom",
	"when", "where", "why", "how", "all", "any", "both", "each", "few",
	"more", "most", "other", "some", "such", "not", "only", "own", "same",
	"too", "very", "just", "than", "then", "there", "here", "out", "off",
	"again", "once", "now", "also",
}
