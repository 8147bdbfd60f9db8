package markdown

// CSS classes shared by both engines so either produces the same preview
// styling.
const (
	classH1         = "text-2xl font-bold mt-4 mb-2 text-gray-900 dark:text-white"
	classH2         = "text-xl font-bold mt-4 mb-2 text-gray-900 dark:text-white"
	classH3         = "text-lg font-bold mt-4 mb-2 text-gray-900 dark:text-white"
	classStrong     = "font-bold"
	classEm         = "italic"
	classLink       = "text-blue-600 dark:text-blue-400 hover:underline"
	classImage      = "max-w-full h-auto rounded-lg my-2"
	classPre        = "bg-gray-100 dark:bg-gray-900 p-4 rounded-lg overflow-x-auto my-2"
	classPreCode    = "text-sm text-gray-800 dark:text-gray-200"
	classCode       = "bg-gray-100 dark:bg-gray-800 px-2 py-1 rounded text-sm text-red-600 dark:text-red-400"
	classListItem   = "ml-4"
	classList       = "list-disc list-inside space-y-1 my-2 text-gray-700 dark:text-gray-300"
	classOrdered    = "list-decimal list-inside space-y-1 my-2 text-gray-700 dark:text-gray-300"
	classTaskItem   = "flex items-center space-x-2"
	classCheckbox   = "rounded"
	classDone       = "line-through text-gray-500"
	classBlockquote = "border-l-4 border-gray-300 dark:border-gray-600 pl-4 italic text-gray-600 dark:text-gray-400 my-2"
	classRule       = "my-4 border-gray-300 dark:border-gray-600"
)

var headingClasses = map[int]string{
	1: classH1,
	2: classH2,
	3: classH3,
}
