package constant

// Signal messages returned by the recommendation retriever. These are
// descriptive strings, never errors; the HTTP layer serves them as-is.
const (
	RecommendationInvalidUser = "Invalid user ID."

	RecommendationNoPurchases = "No purchases yet. Browse our catalog!"

	RecommendationNoEmbeddings = "No embeddings available for your past purchases. Please check back later as we process your books."

	RecommendationNoSimilarForUser = "No similar books found. Try browsing our catalog for new discoveries!"

	RecommendationNoSimilarForTitle = "No similar books found at this time. Try browsing our catalog!"

	RecommendationNoSimilarForQuery = "No similar books found for your query. Try searching for something else!"

	RecommendationUnavailable = "We're having trouble generating recommendations right now. Please try again later."
)

// RecommendationTitleNotFound formats the unresolved-title message, the
// title is interpolated with %s.
const RecommendationTitleNotFound = "Sorry, we couldn't find a book titled '%s' in our catalog."

// RecommendationTitleNoEmbedding is returned when the reference book has
// no embedding yet.
const RecommendationTitleNoEmbedding = "We don't have embedding data for '%s' yet. Please try another book."

// Prompt templates for the narrative generator. Each demands a strict
// HTML <ul> so the storefront can inject the output directly.
const (
	RecommendationUserPrompt = `You are an expert at formatting book recommendations in clean HTML.

Here is a list of books to recommend:

%s

Return ONLY a valid HTML snippet containing an unordered list of recommendations.
Use this exact structure:
- Start directly with <ul>
- Each book as <li><strong>Title</strong> by Author - short 1-sentence reason -- Add a detailed explanation of why each book is recommended.</li>
- End with </ul>

Do NOT include any text outside the HTML.
Do NOT use markdown, code blocks, or backticks.
Do NOT add headings, paragraphs, or explanations.
Do NOT wrap in ` + "```html" + ` tags.

Begin your response directly with <ul>`

	RecommendationTitlePrompt = `You are a knowledgeable bookstore assistant.
A customer enjoyed the book titled "%s".

Here are some similar books from our catalog:

%s

Recommend 3-5 books from the list above that this customer might enjoy next.
Explain briefly why each one is a good recommendation based on similarity to the original book.

Format your response as an HTML unordered list (<ul><li>...</li></ul>) with bold titles.
Do not recommend books outside this list.`

	RecommendationQueryPrompt = `You are a helpful bookstore assistant.
A customer is looking for books based on the following request: "%s".

Here are some books from our catalog that might match their interests:

%s

Recommend 3-5 books from the list above that best match the customer's request.
For each book, provide a detailed explanation of why it fits the specific query provided.

Format your response as an HTML unordered list (<ul><li>...</li></ul>).
Each list item should follow this structure: <li><strong>Title</strong> by Author - Reason for recommendation</li>.
Do not include any text outside the HTML tags.`
)

// Fallback lead-ins per retrieval mode when generation fails.
const (
	RecommendationUserFallbackLead  = "Based on your reading history, you might enjoy:"
	RecommendationTitleFallbackLead = "You might also enjoy:"
	RecommendationQueryFallbackLead = "Based on your search, you might enjoy:"
)
