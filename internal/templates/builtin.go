package templates

// Builtins are the built-in editing templates. They are registered before
// any custom templates, so a custom template may override them by name.
var Builtins = []Template{
	{
		Name: "remove-bg",
		Prompt: "Remove the background from this image completely. " +
			"Make the background fully transparent while preserving the main subject " +
			"with clean, precise edges. Keep only the primary subject visible.",
		Description: "Remove background, make transparent",
		Aliases:     []string{"removebg", "nobg", "background-remove"},
	},
	{
		Name: "enhance",
		Prompt: "Enhance this image to improve overall quality. " +
			"Increase clarity and sharpness, optimize lighting and exposure, " +
			"reduce noise, and improve color balance. " +
			"Make the image look more professional and polished.",
		Description: "Improve quality, clarity, and lighting",
		Aliases:     []string{"improve", "fix", "auto-enhance"},
	},
	{
		Name: "upscale",
		Prompt: "Upscale and enhance this image to a higher resolution. " +
			"Increase the detail and sharpness while maintaining natural appearance. " +
			"Fill in fine details intelligently and reduce any pixelation or blur.",
		Description: "Increase resolution intelligently",
		Aliases:     []string{"resize", "enlarge", "hd"},
	},
	{
		Name: "vintage",
		Prompt: "Apply a vintage film photography effect to this image. " +
			"Add subtle film grain, slightly faded colors, warm tones, " +
			"and a nostalgic aesthetic reminiscent of photos from the 1970s-80s.",
		Description: "Apply vintage/retro film effect",
		Aliases:     []string{"retro", "film", "old-photo"},
	},
	{
		Name: "sepia",
		Prompt: "Convert this image to sepia tone. " +
			"Apply a warm brownish tint throughout, " +
			"creating a classic, antique photograph appearance.",
		Description: "Apply sepia tone effect",
		Aliases:     []string{"brown", "antique"},
	},
	{
		Name: "sharpen",
		Prompt: "Sharpen this image to increase clarity and detail. " +
			"Enhance edges and fine details while avoiding artifacts. " +
			"Make the image appear crisper and more defined.",
		Description: "Sharpen and increase clarity",
		Aliases:     []string{"crisp", "clarity"},
	},
	{
		Name: "bw",
		Prompt: "Convert this image to black and white. " +
			"Create a high-quality monochrome version with good tonal range, " +
			"proper contrast, and artistic appeal.",
		Description: "Convert to black and white",
		Aliases:     []string{"blackwhite", "grayscale", "mono", "monochrome"},
	},
	{
		Name: "blur-bg",
		Prompt: "Apply a professional depth-of-field blur to the background. " +
			"Keep the main subject in sharp focus while creating a smooth, " +
			"pleasing bokeh effect on the background. " +
			"Make it look like a professional portrait photo.",
		Description: "Blur background, keep subject sharp",
		Aliases:     []string{"bokeh", "portrait-mode", "depth"},
	},
	{
		Name: "cartoon",
		Prompt: "Transform this image into a cartoon or illustrated style. " +
			"Simplify details, add bold outlines, and use vibrant, " +
			"flat colors to create an animated/comic book appearance.",
		Description: "Convert to cartoon/illustration style",
		Aliases:     []string{"animate", "comic", "illustrated"},
	},
	{
		Name: "watercolor",
		Prompt: "Transform this image into a watercolor painting style. " +
			"Add soft, flowing brush strokes, subtle color bleeding, " +
			"and the characteristic translucent quality of watercolor art.",
		Description: "Apply watercolor painting effect",
		Aliases:     []string{"painting", "artistic"},
	},
}
