package profiles

// jeanLevisSuffix extends the extraction contract with the nested
// "features" object the denim composer consumes.
const jeanLevisSuffix = `PROFILE TYPE: JEAN LEVI'S

The item is a pair of Levi's denim jeans (ou assimilé).

EXTENDED OUTPUT FOR PROFILE "jean_levis":

You must include, in addition to the base JSON fields
(title, description, brand, style, pattern, neckline, season, defects),
a second nested object called "features".

The final JSON MUST respect the following structure:

{
  "title": string,
  "description": string,
  "brand": string | null,
  "style": string | null,
  "pattern": string | null,
  "neckline": string | null,
  "season": string | null,
  "defects": string | null,

  "features": {
    "brand": string | null,
    "model": string | null,
    "fit": string | null,
    "color": string | null,

    "size_fr": string | null,
    "size_us": string | null,
    "length": string | null,

    "cotton_percent": number | null,
    "elasthane_percent": number | null,

    "rise_type": string | null,
    "rise_cm": number | null,

    "gender": string | null,
    "sku": string | null,
    "sku_status": "ok" | "missing" | "low_confidence"
  }
}

Rules:
- NEVER invent information.
- If a field is not visible on a label or obvious from photos, set null.
- If the SKU tag is unreadable or absent, set sku_status="missing".
- If fit is ambiguous, leave it null.
- If the model number (501, 505, 511, 514, 550…) is visible on a label, put it there.
- Do NOT guess model numbers or fabric percentages.`

// pullTommySuffix steers the extraction towards Tommy Hilfiger knitwear.
const pullTommySuffix = `PROFILE TYPE: PULL TOMMY HILFIGER / TOUS STYLES DE MAILLE

The item is a knit sweater (pull, gilet, cardigan) from Tommy Hilfiger (ou assimilé), couvrant toutes les coupes et styles (preppy, casual, torsadé, jacquard, colorblock, marinière, etc.).

FOCUS ON:

1) BRAND & LOGO:
   - Look for:
     - small flag logo on the chest,
     - internal neck label (Tommy Hilfiger, Tommy Jeans, etc.).
   - If the brand is clearly visible:
     - Set "brand" to exactly that name.
   - If you cannot read the brand clearly:
     - Set "brand" to null (do NOT guess).

2) NECKLINE:
   - Identify:
     - col rond (crew neck),
     - col V (v-neck),
     - col zippé / col montant zippé,
     - col roulé,
     - cardigan / gilet boutonné ou zippé.
   - Set "neckline" accordingly when obvious and mention it in the French description.

3) PATTERN & COLORS (TOUJOURS DANS TITRE + DESCRIPTION):
   - Identify the pattern: uni, rayé, marinière, colorblock, jacquard, torsadé, à motifs géométriques, etc.
   - Describe visible color combinations for rayures/colorblock: "rayures bleu marine et rouge", "colorblock bleu/rouge/blanc", etc.
   - Set "pattern" with a short value: "rayé", "uni", "colorblock", "torsadé", etc.

4) STYLE:
   - Capture the perceived style: preppy, casual, smart casual, college, minimal, etc. only if it fits the visual.

5) MATERIAL / COMPOSITION (LOGIQUE TITRE & DESCRIPTION):
   - Read composition from any label if clearly legible; do NOT invent if unreadable.
   - Rules for the title when composition is lisible:
     - If coton > 60%: mention the percentage in the title (ex: "65% coton").
     - If coton ≤ 60%: mention "coton" sans pourcentage.
     - If the composition includes laine, cachemire, lin ou satin: remplacer la mention de coton par la matière concernée dans le titre (sans pourcentage).
     - If a label says "Pima Coton" or "100% pima coton": the title MUST include "premium".
   - In description:
     - Mention composition exacte lue sur l'étiquette quand visible.
     - If pima coton: mentionner "Premium" et "100% pima coton" explicitement.

6) SEASON:
   - Based on thickness/knit: "hiver", "mi-saison", or similar without over-claiming warmth.

7) CONDITION & DEFECTS:
   - Look carefully for pilling/boulochage, loose threads, snags, stains/discoloration, deformation at cuffs/hem/neckline.
   - "defects": short French summary ("Léger boulochage sur les manches", etc.) or null / "Aucun défaut majeur visible" if clean.

8) TAILLE ET MESURES À PLAT:
   - Respect the UI measurement mode:
     - If the UI says "étiquettes lisibles" (measurement_mode=etiquette): do NOT estimate size from measurements; rely only on labels.
     - If the UI says "analyser les mesures" (measurement_mode=mesures): consider the size label missing and estimate the size (XS, S, M, L, XL, XXL, ...) from flat measurements.
   - In the description, immediately after the size mention: add "Taille estimée à la main à partir des mesures à plat (voir photos)." when the size is deduced.

9) ÉTIQUETTES MANQUANTES:
   - If size label missing only: mention "Etiquette de taille coupée pour plus de confort" in the description.
   - If composition label missing only: mention "Etiquette de composition coupée pour plus de confort".
   - If both missing: mention "Etiquette taille et composition coupées pour plus de confort".

10) TITLE & DESCRIPTION (FRENCH):
   - title:
     - concise, clear, French.
     - Must include brand (if visible), garment type (pull/gilet/cardigan), motif/pattern, and the composition rule above.
   - description (no markdown):
     - type de maille/coupe + col,
     - motif et couleurs (toujours rappeler le motif),
     - marque si connue,
     - composition lisible + mentions Premium/pima coton si applicable,
     - saison d'usage,
     - état/défauts,
     - note sur taille estimée si applicable,
     - mention sur étiquettes coupées si applicable,
     - hashtags pertinents en fin de description pour la recherche (ex: #tommyhilfiger #pulltommy #preloved ...).

JSON SCHEMA:
- Use the SAME JSON keys as defined in the main prompt contract:
  "title", "description", "brand", "style", "pattern", "neckline", "season", "defects".
- Do NOT add extra keys, and do NOT change key names.`

// pullTommyFormatInstruction pins the knitwear description to the fixed
// 14-line block layout.
const pullTommyFormatInstruction = `DESCRIPTION PULL_TOMMY : respecter le format en 14 lignes avec LIGNES VIDES obligatoires pour séparer les blocs (inspiré du profil jean Levi's). Ordre impératif : (1) type + genre + taille, (2) motif/couleurs/col, (3) LIGNE VIDE, (4) composition avec mention Premium/pima coton si vu, (5) saison, (6) LIGNE VIDE, (7) état/défauts, (8) étiquettes coupées si applicable, (9) phrase mesures en photo sans chiffres, (10) "📦 Envoi rapide et soigné", (11) LIGNE VIDE, (12) call-to-action vers la collection, (13) conseil lot/réduction, (14) ligne hashtags. Aucun SKU et aucune valeur de mesure chiffrée dans la description.`
