package testdata

const data = `{
  "score": [
    {"counts": {"harmony": 100, "tune": 0, "fail": 0}, "max_combo": 100, "score": 1000000, "base_score": 920000, "combo_score": 80000},
    {"counts": {"harmony": 90, "tune": 5, "fail": 5}, "max_combo": 95, "score": 926000, "base_score": 848000, "combo_score": 78000},
    {"counts": {"harmony": 500, "tune": 20, "fail": 3}, "max_combo": 300, "score": 957782, "base_score": 894837, "combo_score": 62945},
    {"counts": {"harmony": 1234, "tune": 56, "fail": 7}, "max_combo": 1297, "score": 972583, "base_score": 892583, "combo_score": 80000},
    {"counts": {"harmony": 1234, "tune": 56, "fail": 7}, "max_combo": 800, "score": 957255, "base_score": 892583, "combo_score": 64672},
    {"counts": {"harmony": 500, "tune": 20, "fail": 3}, "max_combo": 2000, "score": 974837, "base_score": 894837, "combo_score": 80000},
    {"counts": {"harmony": 500, "tune": 20, "fail": 3}, "max_combo": -5, "score": 894837, "base_score": 894837, "combo_score": 0},
    {"counts": {"harmony": 333, "tune": 33, "fail": 3}, "max_combo": 0, "score": 866016, "base_score": 866016, "combo_score": 0},
    {"counts": {"harmony": 2, "tune": 1, "fail": 0}, "max_combo": 2, "score": 813333, "base_score": 746667, "combo_score": 66667},
    {"counts": {"harmony": 7, "tune": 0, "fail": 0}, "max_combo": 7, "score": 1000000, "base_score": 920000, "combo_score": 80000},
    {"counts": {"harmony": 0, "tune": 0, "fail": 10}, "max_combo": 0, "score": 0, "base_score": 0, "combo_score": 0},
    {"counts": {"harmony": 0, "tune": 0, "fail": 0}, "max_combo": 10, "score": 0, "base_score": 0, "combo_score": 0}
  ],
  "rating": [
    {"counts": {"harmony": 100, "tune": 0, "fail": 0}, "difficulty": {"level": 13, "plus": false}, "rating": 14, "achievement_rate": 1, "formula": "(100 + 0/3) / 100 * (13 + 1)"},
    {"counts": {"harmony": 90, "tune": 5, "fail": 5}, "difficulty": {"level": 14, "plus": true}, "rating": 14.2083, "achievement_rate": 0.916667, "formula": "(90 + 5/3) / 100 * (14 + 1.5)"},
    {"counts": {"harmony": 500, "tune": 20, "fail": 3}, "difficulty": {"level": 15, "plus": true}, "rating": 16.2269, "achievement_rate": 0.96877, "formula": "(500 + 20/3) / 523 * (15 + 1.75)"},
    {"counts": {"harmony": 1234, "tune": 56, "fail": 7}, "difficulty": {"level": 16, "plus": false}, "rating": 16.9018, "achievement_rate": 0.965819, "formula": "(1234 + 56/3) / 1297 * (16 + 1.5)"},
    {"counts": {"harmony": 1234, "tune": 56, "fail": 7}, "difficulty": {"level": 16, "plus": true}, "rating": 17.6262, "achievement_rate": 0.965819, "formula": "(1234 + 56/3) / 1297 * (16 + 2.25)"},
    {"counts": {"harmony": 333, "tune": 33, "fail": 3}, "difficulty": {"level": 13, "plus": false}, "rating": 13.0515, "achievement_rate": 0.932249, "formula": "(333 + 33/3) / 369 * (13 + 1)"},
    {"counts": {"harmony": 7, "tune": 0, "fail": 0}, "difficulty": {"level": 1, "plus": false}, "rating": 2, "achievement_rate": 1, "formula": "(7 + 0/3) / 7 * (1 + 1)"},
    {"counts": {"harmony": 0, "tune": 0, "fail": 10}, "difficulty": {"level": 12, "plus": false}, "rating": 0, "achievement_rate": 0, "formula": "(0 + 0/3) / 10 * (12 + 1)"},
    {"counts": {"harmony": 0, "tune": 0, "fail": 0}, "difficulty": {"level": 12, "plus": true}, "rating": 0, "achievement_rate": 0, "formula": "No notes"}
  ],
  "tolerance": [
    {"target": 990000, "chart": {"difficulty": {"level": 10, "plus": false}, "note_count": 1000}, "max_tunes_fc": 19, "estimated_rating": 10.85897435897436},
    {"target": 1000000, "chart": {"difficulty": {"level": 13, "plus": true}, "note_count": 777}, "max_tunes_fc": 0, "estimated_rating": 14.5},
    {"target": 1000001, "chart": {"difficulty": {"level": 15, "plus": true}, "note_count": 500}, "max_tunes_fc": -1, "estimated_rating": 0},
    {"target": 950000, "chart": {"difficulty": {"level": 15, "plus": true}, "note_count": 1200}, "max_tunes_fc": 115, "estimated_rating": 15.676282051282051},
    {"target": 900000, "chart": {"difficulty": {"level": 16, "plus": false}, "note_count": 888}, "max_tunes_fc": 170, "estimated_rating": 15.256410256410257},
    {"target": 0, "chart": {"difficulty": {"level": 16, "plus": true}, "note_count": 100}, "max_tunes_fc": 192, "estimated_rating": -5.1474358974359},
    {"target": 990000, "chart": {"difficulty": {"level": 10, "plus": false}, "note_count": 0}, "max_tunes_fc": 0, "estimated_rating": 0}
  ]
}`
