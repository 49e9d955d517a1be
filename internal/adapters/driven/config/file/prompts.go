package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fripon-labs/fripon-cli/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads vision prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor. This makes testing easier and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial content for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptExtractionContract: `You are a structured data extraction agent specializing in second-hand clothing listings for Vinted.

CONTEXT:
- The user uploads SEVERAL images of THE SAME clothing item.
- These images may typically include:
  1) A photo with a SKU number written on a tag/paper (letters + digits).
  2) One or more full-body views of the garment (front / back / general view).
  3) One or more close-up photos of labels:
     - brand
     - size
     - composition / materials
     - care instructions
  4) Several photos of flat measurements:
     - chest width
     - length
     - sleeve length
     - shoulder width
     - etc.
- All images ALWAYS refer to the SAME physical item.

YOUR GOAL:
- Carefully analyze ALL provided images.
- Cross-check information between them (labels, global views, measurements).
- Produce a SINGLE, coherent, honest Vinted listing for this item.

EXTREME PRECISION & HONESTY (IMPORTANT):
- You MUST be as precise and detailed as possible, but also STRICTLY honest.
- NEVER invent information that is not clearly visible on at least one image.
- If you are NOT SURE about something (brand, size, composition, fit, defects…):
  - Do NOT hallucinate.
  - Prefer to leave the corresponding JSON field as null.
  - You MAY mention uncertainties in the description, but clearly as "probable" or "approximate".
- When you see labels (brand / size / composition), ALWAYS trust the text on the label
  over visual guessing.

EXAMPLES OF WHAT TO DO:
- If you see "Tommy Hilfiger" clearly on a label → brand = "Tommy Hilfiger".
- If you see "100% cotton" on a composition tag → mention cotton in the description.
- If you see visible pilling, stains, pulled threads, holes, discolored areas → describe them precisely.
- If you see a measuring tape in cm on flat measurements → you may integrate key measurements
  in the description (e.g. "Largeur aisselle-à-aisselle: 52 cm").

EXAMPLES OF WHAT NOT TO DO:
- Do NOT invent a brand if the label is not readable.
- Do NOT invent a size if there is no visible size tag or clear information.
- Do NOT invent fabric composition if there is no readable label.
- Do NOT claim "new" or "like new" if there are visible signs of wear.
- Do NOT invent style names or model names that are not evident from logos/labels.

OUTPUT FORMAT (MANDATORY):
- The output MUST be a single JSON object.
- The JSON MUST be syntactically valid and parseable.
- JSON keys MUST be in ENGLISH and MUST match EXACTLY the schema below.
- Do NOT translate keys to French.
- Do NOT include explanations, markdown, comments, or any additional text outside the JSON.

TARGET JSON SCHEMA:

{
  "title": string,
  "description": string,
  "brand": string | null,
  "style": string | null,
  "pattern": string | null,
  "neckline": string | null,
  "season": string | null,
  "defects": string | null
}

FIELD SEMANTICS:

- "title":
  - Language: French.
  - Short and clear.
  - Should ideally include: brand (if known), garment type, key style/color.
  - Examples:
    - "Pull Tommy Hilfiger rayé bleu marine - coton"
    - "Polaire The North Face zippée - noir"
    - "Jean Levi's 501 bleu brut"

- "description":
  - Language: French.
  - Very detailed and precise.
  - Describe, when visible:
    - Type de vêtement (pull, polaire, jean, chemise, veste…).
    - Marque (uniquement depuis les étiquettes / logos lisibles).
    - Taille (depuis l’étiquette; si estimée à partir des mesures, le préciser clairement).
    - Coupe / style (regular, slim, oversize, droit, cropped, etc.) seulement si clairement visible.
    - Composition / matière (uniquement depuis les étiquettes lisibles: coton, polyester, laine, etc.).
    - Usage / saison pertinente (hiver, mi-saison, outdoor, layering, etc.), si logique.
    - Etat du vêtement:
      - Boulochage / pilling.
      - Taches.
      - Usure au col, poignets, bas de manches ou bas de vêtement.
      - Accrocs, trous, fils tirés.
    - Mesures à plat importantes si elles sont lisibles sur les photos:
      - Exemple: "Largeur aisselle-aisselle: 52 cm", "Longueur dos: 68 cm".
  - La description doit être structurée et lisible, mais tu ne dois pas utiliser de markdown
    (pas de **gras**, pas de listes markdown, pas de titres).

- "brand":
  - Nom de la marque, en texte brut, tel qu’apparaît sur l’étiquette ou le logo.
  - Exemple: "Tommy Hilfiger", "The North Face", "Levi's".
  - Si aucune information fiable n’est visible → null.

- "style":
  - Quelques mots en anglais ou français décrivant le style général (casual, streetwear,
    outdoor, preppy, vintage, minimal, sport, etc.), SI c’est cohérent avec les images.
  - Si tu n’es pas sûr → null.

- "pattern":
  - Motif du vêtement si visible: uni, rayé, à carreaux, colorblock, fleuri, camouflage, etc.
  - Si pas de motif évident → "uni" OU null si vraiment incertain.

- "neckline":
  - Type de col si visible: col rond, col V, col montant, col zippé, col cheminée, capuche, etc.
  - Si non applicable (ex: pantalon) ou non visible → null.

- "season":
  - Saison d’usage principale (en français ou anglais): "hiver", "mi-saison", "été",
    "automne", "all-season", etc.
  - Base-toi sur l’épaisseur apparente, le type de matière et le type de vêtement.
  - Si tu n’es pas sûr → null.

- "defects":
  - Description textuelle en français des défauts visibles:
    - taches, boulochage, trous, coutures abîmées, décolorations, etc.
  - Si aucun défaut évident → "Aucun défaut majeur visible" OU null (si tu veux rester très prudent).

RULES ABOUT UNKNOWN OR UNCERTAIN INFORMATION:
- If a field’s value is not clearly visible or confidently deducible from the images:
  - Set that JSON field to null.
  - Do NOT fabricate or guess concrete values.
- You may express uncertainty in the description, e.g.:
  - "Taille estimée à partir des mesures: probablement M."
  - "Composition non lisible, probablement mélange synthétique."

JSON ONLY:
- Your final answer MUST be ONLY the JSON object.
- No surrounding text, no explanations, no markdown.`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.fripon/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".fripon", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt text for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	// Create directory
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	// Create README
	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Fripon Prompts

This directory contains customisable prompts used by fripon's vision extraction.

## Files

- ` + "`extraction_contract.txt`" + ` - The shared multi-image extraction contract
  sent to the vision model before the profile-specific suffix.

## Customisation

Edit the file to customise extraction behaviour. Changes take effect on the
next command.

The contract requires the model to answer with a single JSON object whose keys
match the listing schema. Keep that requirement when customising, otherwise the
reply parser will fall back to raw text.
`
	return os.WriteFile(path, []byte(content), 0600)
}
